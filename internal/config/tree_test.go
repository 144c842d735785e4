package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"earl/internal/model"
)

const sampleURLs = `
[home]
c = "https://c"

[work.gcp]
b = "https://b"

[work.aws]
zeta = "https://z"
alpha = "https://a"
`

func TestGroups_FlattensAndSorts(t *testing.T) {
	tree, err := Parse([]byte(sampleURLs))
	require.NoError(t, err)

	assert.Equal(t, []string{"home", "work.aws", "work.gcp"}, tree.Groups())
	assert.Empty(t, tree.Warnings())
}

func TestResolve_KeepsFileOrder(t *testing.T) {
	tree, err := Parse([]byte(sampleURLs))
	require.NoError(t, err)

	links := tree.Resolve("work.aws")
	assert.Equal(t, model.Links{
		{Name: "zeta", URL: "https://z"},
		{Name: "alpha", URL: "https://a"},
	}, links)
}

func TestResolve_MissingIsEmpty(t *testing.T) {
	tree, err := Parse([]byte(sampleURLs))
	require.NoError(t, err)

	for _, path := range []string{"nonexistent.path", "work.azure", "home.c.extra", "", "work"} {
		assert.Empty(t, tree.Resolve(path), path)
	}
}

func TestParse_MixedTableIsGroupWithWarning(t *testing.T) {
	src := `
[work]
stray = "https://stray"
count = 3

[work.aws]
console = "https://console"
`
	tree, err := Parse([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"work.aws"}, tree.Groups())
	assert.Empty(t, tree.Resolve("work"))
	assert.Len(t, tree.Warnings(), 2)
	assert.Contains(t, tree.Warnings()[0], `"stray"`)
}

func TestParse_TopLevelStringsIgnored(t *testing.T) {
	tree, err := Parse([]byte("loose = \"https://x\"\n[g]\na = \"https://a\"\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"g"}, tree.Groups())
	assert.Len(t, tree.Warnings(), 1)
}

func TestParse_EmptyTableIsNotListed(t *testing.T) {
	tree, err := Parse([]byte("[empty]\n[g]\na = \"https://a\"\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"g"}, tree.Groups())
	assert.Empty(t, tree.Resolve("empty"))
}

func TestParse_NonStringValueDropsLeaf(t *testing.T) {
	tree, err := Parse([]byte("[g]\na = \"https://a\"\nn = 5\n"))
	require.NoError(t, err)

	assert.Empty(t, tree.Groups())
	assert.Empty(t, tree.Resolve("g"))
	require.Len(t, tree.Warnings(), 2)
	for _, w := range tree.Warnings() {
		assert.Contains(t, w, "non-string value")
		assert.NotContains(t, w, "nested groups")
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("[broken\n"))
	assert.ErrorIs(t, err, ErrParse)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "urls.toml"))
	assert.ErrorIs(t, err, ErrNotFound)

	path := filepath.Join(dir, "urls.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleURLs), 0o644))
	tree, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, tree.Groups(), 3)

	require.NoError(t, os.WriteFile(path, []byte("= nope"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrParse)
}
