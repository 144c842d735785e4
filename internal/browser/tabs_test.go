package browser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"earl/internal/model"
)

func TestFrontWindowTabs(t *testing.T) {
	r := &fakeRunner{output: []byte(`[
		{"title": "Docs", "url": "https://docs.example"},
		{"title": 42, "url": "https://untitled.example"},
		{"title": "No URL"},
		{"title": "Empty", "url": ""},
		"junk"
	]` + "\n")}
	c := &ChromeTabs{Runner: r, Log: quietLogger()}

	tabs := c.FrontWindowTabs(context.Background())

	assert.Equal(t, []model.Tab{
		{Title: "Docs", URL: "https://docs.example"},
		{Title: "", URL: "https://untitled.example"},
	}, tabs)
	assert.Equal(t, []string{"-l", "JavaScript", "-e", frontWindowJXA}, r.calls[0].Args)
}

func TestFrontWindowTabs_BestEffort(t *testing.T) {
	tests := map[string]*fakeRunner{
		"process fails": {fail: map[string]error{"osascript": errors.New("not running")}},
		"not json":      {output: []byte("execution error: -1728")},
		"not an array":  {output: []byte(`{"title":"x"}`)},
		"empty output":  {output: []byte("\n")},
		"no windows":    {output: []byte("[]")},
	}
	for name, r := range tests {
		t.Run(name, func(t *testing.T) {
			c := &ChromeTabs{Runner: r, Log: quietLogger()}
			assert.Empty(t, c.FrontWindowTabs(context.Background()))
		})
	}
}
