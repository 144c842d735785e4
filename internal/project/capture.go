// Package project reads and writes .earl.toml project files: a fixed set
// of URLs plus the options used to open them.
package project

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"earl/internal/model"
)

// DefaultPinnedPrefixes marks captured tabs that should be pinned when the
// project is reopened.
var DefaultPinnedPrefixes = []string{
	"https://tabitha.smallblocksoftware.com/",
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// IsWebURL reports whether raw parses as an http or https URL.
func IsWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// BuildURLs turns captured tabs into project entries. Tabs that are not
// http(s) are dropped. Names come from the tab title, falling back to the
// host and then the raw URL, and repeated names get " (2)", " (3)", ...
func BuildURLs(tabs []model.Tab, pinnedPrefixes []string) []model.ProjectURL {
	seen := make(map[string]int)
	var out []model.ProjectURL

	for _, tab := range tabs {
		u, err := url.Parse(tab.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			continue
		}

		base := strings.TrimSpace(whitespaceRE.ReplaceAllString(tab.Title, " "))
		if base == "" {
			base = u.Host
		}
		if base == "" {
			base = tab.URL
		}

		seen[base]++
		name := base
		if n := seen[base]; n > 1 {
			name = fmt.Sprintf("%s (%d)", base, n)
		}

		out = append(out, model.ProjectURL{
			Name:   name,
			URL:    tab.URL,
			Pinned: hasAnyPrefix(tab.URL, pinnedPrefixes),
		})
	}
	return out
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
