package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"earl/internal/model"
)

var (
	// ErrNotFound is returned when no project file can be located.
	ErrNotFound = errors.New("project file not found")
	// ErrMalformed is returned when the project file as a whole is unusable.
	ErrMalformed = errors.New("malformed project file")
)

// File is a parsed project file. Entries that could not be used are left
// out of URLs and described in Warnings.
type File struct {
	Path     string
	Options  model.Options
	URLs     []model.ProjectURL
	Warnings []string
}

// PinnedIndices returns the positions of pinned entries within URLs.
func (f *File) PinnedIndices() []int {
	var idx []int
	for i, u := range f.URLs {
		if u.Pinned {
			idx = append(idx, i)
		}
	}
	return idx
}

// Links returns the raw URLs in order.
func (f *File) Links() []string {
	out := make([]string, len(f.URLs))
	for i, u := range f.URLs {
		out[i] = u.URL
	}
	return out
}

// Load reads and parses the project file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Parse decodes a project file. Problems with single entries are recorded
// as warnings; only problems with the file as a whole are errors.
func Parse(data []byte) (*File, error) {
	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	f := &File{}
	if err := f.parseOptions(raw["options"]); err != nil {
		return nil, err
	}

	entries, err := urlEntries(raw["urls"])
	if err != nil {
		return nil, err
	}
	for i, entry := range entries {
		if u, ok := f.parseEntry(i, entry); ok {
			f.URLs = append(f.URLs, u)
		}
	}
	return f, nil
}

func (f *File) warnf(format string, args ...any) {
	f.Warnings = append(f.Warnings, fmt.Sprintf(format, args...))
}

func (f *File) parseOptions(v any) error {
	f.Options.Browser = model.BrowserDefault
	if v == nil {
		return nil
	}
	opts, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: [options] must be a table", ErrMalformed)
	}

	if b, present := opts["browser"]; present {
		s, ok := b.(string)
		if !ok {
			return fmt.Errorf("%w: options.browser must be a string", ErrMalformed)
		}
		kind, err := model.ParseBrowserKind(s)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		f.Options.Browser = kind
	}

	if p, present := opts["chrome_profile"]; present {
		s, ok := p.(string)
		if !ok {
			return fmt.Errorf("%w: options.chrome_profile must be a string", ErrMalformed)
		}
		if s != ProfilePlaceholder {
			f.Options.ChromeProfile = s
		}
	}
	return nil
}

func urlEntries(v any) ([]any, error) {
	switch list := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: missing [[urls]] array", ErrMalformed)
	case []map[string]any:
		out := make([]any, len(list))
		for i, m := range list {
			out[i] = m
		}
		return out, nil
	case []any:
		return list, nil
	default:
		return nil, fmt.Errorf("%w: urls must be an array of tables", ErrMalformed)
	}
}

func (f *File) parseEntry(i int, v any) (model.ProjectURL, bool) {
	entry, ok := v.(map[string]any)
	if !ok {
		f.warnf("urls[%d]: skipped, not a table", i)
		return model.ProjectURL{}, false
	}

	name, ok := entry["name"].(string)
	if !ok || name == "" {
		f.warnf("urls[%d]: skipped, missing name", i)
		return model.ProjectURL{}, false
	}
	link, ok := entry["url"].(string)
	if !ok || link == "" {
		f.warnf("urls[%d] %q: skipped, missing url", i, name)
		return model.ProjectURL{}, false
	}
	if !IsWebURL(link) {
		f.warnf("urls[%d] %q: skipped, %q is not an http(s) URL", i, name, link)
		return model.ProjectURL{}, false
	}

	u := model.ProjectURL{Name: name, URL: link}
	switch p := entry["pinned"].(type) {
	case nil:
	case bool:
		u.Pinned = p
	default:
		f.warnf("urls[%d] %q: pinned must be true or false, treating as false", i, name)
	}
	return u, true
}
