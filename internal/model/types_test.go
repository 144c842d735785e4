package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBrowserKind(t *testing.T) {
	for in, want := range map[string]BrowserKind{
		"chrome":   BrowserChrome,
		" Safari ": BrowserSafari,
		"DEFAULT":  BrowserDefault,
	} {
		got, err := ParseBrowserKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseBrowserKind("firefox")
	assert.Error(t, err)
}

func TestLinks(t *testing.T) {
	links := Links{{Name: "a", URL: "https://a"}, {Name: "b", URL: "https://b"}}

	assert.Equal(t, []string{"a", "b"}, links.Names())
	assert.Equal(t, []string{"https://a", "https://b"}, links.URLs())

	url, ok := links.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, "https://b", url)

	_, ok = links.Lookup("c")
	assert.False(t, ok)
}
