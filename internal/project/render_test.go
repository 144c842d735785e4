package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"earl/internal/model"
)

func TestRender_Chrome(t *testing.T) {
	got, err := Render(
		model.Options{Browser: model.BrowserChrome, ChromeProfile: "Work", ProfileDirHint: "Profile 2"},
		[]model.ProjectURL{
			{Name: `Say "hi"`, URL: "https://a.example", Pinned: true},
			{Name: `C:\path`, URL: "https://b.example"},
		},
	)
	require.NoError(t, err)

	want := `[options]
browser = "chrome"
chrome_profile = "Work"  # dir: Profile 2

[[urls]]
name = "Say \"hi\""
url = "https://a.example"
pinned = true

[[urls]]
name = "C:\\path"
url = "https://b.example"
`
	assert.Equal(t, want, got)
}

func TestRender_Placeholders(t *testing.T) {
	got, err := Render(model.Options{Browser: model.BrowserChrome}, nil)
	require.NoError(t, err)
	assert.Equal(t, "[options]\nbrowser = \"chrome\"\nchrome_profile = \"CHROME_PROFILE_HERE\"\n", got)

	got, err = Render(model.Options{Browser: model.BrowserSafari, ChromeProfile: "ignored"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "[options]\nbrowser = \"safari\"\n", got)
}

func TestRender_UnsupportedBrowser(t *testing.T) {
	_, err := Render(model.Options{Browser: "netscape"}, nil)
	assert.Error(t, err)
}

func TestRender_RoundTrip(t *testing.T) {
	cases := []struct {
		opts model.Options
		urls []model.ProjectURL
	}{
		{
			opts: model.Options{Browser: model.BrowserChrome, ChromeProfile: "Profile 3"},
			urls: []model.ProjectURL{
				{Name: "Docs", URL: "https://docs.example/a?b=c&d=\"e\""},
				{Name: "Docs (2)", URL: "https://docs.example/b", Pinned: true},
				{Name: "tab\tnew\nline \\ é ✓", URL: "http://x.example/"},
				{Name: "bell\x07", URL: "https://y.example/"},
			},
		},
		{
			opts: model.Options{Browser: model.BrowserChrome},
			urls: []model.ProjectURL{{Name: "Only", URL: "https://only.example"}},
		},
		{
			opts: model.Options{Browser: model.BrowserSafari},
			urls: []model.ProjectURL{{Name: "A", URL: "https://a"}, {Name: "B", URL: "https://b"}},
		},
		{
			opts: model.Options{Browser: model.BrowserDefault},
			urls: []model.ProjectURL{{Name: "A", URL: "https://a", Pinned: true}},
		},
	}

	for _, tc := range cases {
		text, err := Render(tc.opts, tc.urls)
		require.NoError(t, err)

		f, err := Parse([]byte(text))
		require.NoError(t, err, text)
		assert.Equal(t, tc.opts.Browser, f.Options.Browser)
		assert.Equal(t, tc.opts.ChromeProfile, f.Options.ChromeProfile)
		assert.Equal(t, tc.urls, f.URLs)
		assert.Empty(t, f.Warnings)
	}
}

func TestRender_RejectsInvalidUTF8(t *testing.T) {
	_, err := Render(model.Options{Browser: model.BrowserDefault},
		[]model.ProjectURL{{Name: "bad\xffname", URL: "https://a.example"}})
	assert.ErrorIs(t, err, ErrInvalidText)

	_, err = Render(model.Options{Browser: model.BrowserChrome, ChromeProfile: "Wo\xferk"}, nil)
	assert.ErrorIs(t, err, ErrInvalidText)
}

func TestRender_DirHintControlCharacters(t *testing.T) {
	for _, hint := range []string{"Prof\rile", "Prof\nile", "Prof\x00ile\x7f", "Prof\x1bile", "Prof\xffile"} {
		text, err := Render(model.Options{Browser: model.BrowserChrome, ChromeProfile: "Work", ProfileDirHint: hint},
			[]model.ProjectURL{{Name: "A", URL: "https://a.example"}})
		require.NoError(t, err, "%q", hint)
		assert.Contains(t, text, "  # dir: Prof", "%q", hint)

		f, err := Parse([]byte(text))
		require.NoError(t, err, "%q", hint)
		assert.Equal(t, "Work", f.Options.ChromeProfile)
		assert.Len(t, f.URLs, 1)
	}
}
