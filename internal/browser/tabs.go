package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ohler55/ojg/oj"

	"earl/internal/model"
)

// TabSource lists the tabs of a browser's frontmost window.
type TabSource interface {
	FrontWindowTabs(ctx context.Context) []model.Tab
}

// frontWindowJXA prints the frontmost Chrome window's tabs as a JSON array
// of {title, url}. Any failure inside the browser yields "[]".
const frontWindowJXA = `(() => {
  try {
    const chrome = Application("Google Chrome");
    const windows = chrome.windows();
    if (windows.length === 0) {
      return JSON.stringify([]);
    }
    const tabs = windows[0].tabs().map(t => ({
      title: String(t.title()),
      url: String(t.url()),
    }));
    return JSON.stringify(tabs);
  } catch (e) {
    return JSON.stringify([]);
  }
})();`

// ChromeTabs reads tabs from a running Chrome through JavaScript for
// Automation.
type ChromeTabs struct {
	Runner Runner
	Log    *log.Logger
}

// FrontWindowTabs returns the tabs of Chrome's frontmost window. Capture
// is best-effort: any failure is logged and yields no tabs.
func (c *ChromeTabs) FrontWindowTabs(ctx context.Context) []model.Tab {
	out, err := c.Runner.Run(ctx, OsascriptBin, "-l", "JavaScript", "-e", frontWindowJXA)
	if err != nil {
		c.Log.Warn("Failed reading Chrome tabs via osascript", "err", err)
		return nil
	}
	tabs, err := parseTabs(out)
	if err != nil {
		c.Log.Warn("Failed parsing osascript output", "err", err)
		return nil
	}
	c.Log.Debug("Captured Chrome tabs", "count", len(tabs))
	return tabs
}

// parseTabs decodes the JSON printed by frontWindowJXA. Items without a
// string url are skipped; a missing or non-string title becomes "".
func parseTabs(out []byte) ([]model.Tab, error) {
	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return nil, nil
	}

	v, err := oj.ParseString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("decode tabs: %w", err)
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("decode tabs: expected an array, got %T", v)
	}

	var tabs []model.Tab
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		url, _ := m["url"].(string)
		if url == "" {
			continue
		}
		title, _ := m["title"].(string)
		tabs = append(tabs, model.Tab{Title: title, URL: url})
	}
	return tabs, nil
}
