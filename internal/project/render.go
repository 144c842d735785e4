package project

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"earl/internal/model"
)

// ProfilePlaceholder is written when a chrome project has no profile yet.
// It reads back as an empty profile.
const ProfilePlaceholder = "CHROME_PROFILE_HERE"

// ErrInvalidText is returned by Render for strings that are not valid UTF-8.
var ErrInvalidText = errors.New("not valid UTF-8")

// Render serializes a project file: [options] first, then one [[urls]]
// block per entry in order.
func Render(opts model.Options, urls []model.ProjectURL) (string, error) {
	kind, err := model.ParseBrowserKind(string(opts.Browser))
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(opts.ChromeProfile) {
		return "", fmt.Errorf("chrome_profile %q: %w", opts.ChromeProfile, ErrInvalidText)
	}
	for i, u := range urls {
		if !utf8.ValidString(u.Name) || !utf8.ValidString(u.URL) {
			return "", fmt.Errorf("urls[%d] %q: %w", i, u.Name, ErrInvalidText)
		}
	}

	var b strings.Builder
	b.WriteString("[options]\n")
	fmt.Fprintf(&b, "browser = %s\n", quote(string(kind)))

	if kind == model.BrowserChrome {
		profile := opts.ChromeProfile
		if profile == "" {
			profile = ProfilePlaceholder
		}
		fmt.Fprintf(&b, "chrome_profile = %s", quote(profile))
		if hint := commentText(opts.ProfileDirHint); hint != "" {
			fmt.Fprintf(&b, "  # dir: %s", hint)
		}
		b.WriteString("\n")
	}

	for _, u := range urls {
		b.WriteString("\n[[urls]]\n")
		fmt.Fprintf(&b, "name = %s\n", quote(u.Name))
		fmt.Fprintf(&b, "url = %s\n", quote(u.URL))
		if u.Pinned {
			b.WriteString("pinned = true\n")
		}
	}
	return b.String(), nil
}

// commentText makes s safe for a TOML comment: invalid UTF-8 is dropped
// and control characters become spaces.
func commentText(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, strings.ToValidUTF8(s, ""))
	return strings.TrimSpace(s)
}

// quote renders s as a TOML basic string.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
