package project

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"earl/internal/model"
)

func names(urls []model.ProjectURL) []string {
	out := make([]string, len(urls))
	for i, u := range urls {
		out[i] = u.Name
	}
	return out
}

func TestBuildURLs_DedupesNames(t *testing.T) {
	tabs := []model.Tab{
		{Title: "Docs", URL: "https://a.example/1"},
		{Title: "Docs", URL: "https://a.example/2"},
		{Title: "Docs", URL: "https://a.example/3"},
	}
	got := BuildURLs(tabs, nil)
	assert.Equal(t, []string{"Docs", "Docs (2)", "Docs (3)"}, names(got))
}

func TestBuildURLs_FiltersSchemes(t *testing.T) {
	tabs := []model.Tab{
		{Title: "Settings", URL: "chrome://settings"},
		{Title: "Local", URL: "file:///tmp/x.html"},
		{Title: "Example", URL: "https://example.com"},
		{Title: "Broken", URL: "http://[::1"},
	}
	got := BuildURLs(tabs, nil)
	assert.Equal(t, []model.ProjectURL{{Name: "Example", URL: "https://example.com"}}, got)
}

func TestBuildURLs_NameFallbacks(t *testing.T) {
	tabs := []model.Tab{
		{Title: "  Spaced \n\t out  ", URL: "https://one.example/"},
		{Title: "", URL: "https://two.example/path"},
		{Title: "   ", URL: "https://two.example/other"},
	}
	got := BuildURLs(tabs, nil)
	assert.Equal(t, []string{"Spaced out", "two.example", "two.example (2)"}, names(got))
}

func TestBuildURLs_Pinned(t *testing.T) {
	tabs := []model.Tab{
		{Title: "Board", URL: "https://tabitha.smallblocksoftware.com/board/1"},
		{Title: "Other", URL: "https://example.com"},
	}
	got := BuildURLs(tabs, DefaultPinnedPrefixes)
	assert.True(t, got[0].Pinned)
	assert.False(t, got[1].Pinned)
}

func TestIsWebURL(t *testing.T) {
	assert.True(t, IsWebURL("http://x"))
	assert.True(t, IsWebURL("https://x/y?z"))
	assert.False(t, IsWebURL("chrome://settings"))
	assert.False(t, IsWebURL("example.com"))
}
