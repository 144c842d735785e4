package model

import (
	"fmt"
	"strings"
)

// Version is the released version of earl.
const Version = "0.4.0"

// Tab is a single open browser tab as reported by the browser.
type Tab struct {
	Title string // Tab title, may be empty
	URL   string // Tab URL, any scheme
}

// Link is a named URL from a leaf group of the global config.
type Link struct {
	Name string
	URL  string
}

// Links is an ordered name -> URL mapping.
type Links []Link

// Names returns the link names in order.
func (l Links) Names() []string {
	names := make([]string, len(l))
	for i, link := range l {
		names[i] = link.Name
	}
	return names
}

// Lookup returns the URL stored under name.
func (l Links) Lookup(name string) (string, bool) {
	for _, link := range l {
		if link.Name == name {
			return link.URL, true
		}
	}
	return "", false
}

// URLs returns the URLs in order.
func (l Links) URLs() []string {
	urls := make([]string, len(l))
	for i, link := range l {
		urls[i] = link.URL
	}
	return urls
}

// ProjectURL is one entry of a project file.
type ProjectURL struct {
	Name   string // Unique within the project
	URL    string // http or https
	Pinned bool   // Pin the tab after opening (Chrome only)
}

// BrowserKind selects the launch strategy for a project.
type BrowserKind string

const (
	BrowserChrome  BrowserKind = "chrome"
	BrowserSafari  BrowserKind = "safari"
	BrowserDefault BrowserKind = "default"
)

// ParseBrowserKind normalizes s and checks it names a supported browser.
func ParseBrowserKind(s string) (BrowserKind, error) {
	switch kind := BrowserKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case BrowserChrome, BrowserSafari, BrowserDefault:
		return kind, nil
	}
	return "", fmt.Errorf("unsupported browser %q (want chrome, safari or default)", s)
}

// Options is the [options] section of a project file.
type Options struct {
	Browser       BrowserKind
	ChromeProfile string // Profile directory or display name; chrome only
	// ProfileDirHint is written as a trailing comment next to
	// chrome_profile. It is not read back.
	ProfileDirHint string
}

// ProfileMap maps a Chrome profile directory ("Profile 2") to its display
// name ("Work").
type ProfileMap map[string]string
