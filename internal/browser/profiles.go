package browser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"earl/internal/model"
)

const (
	DefaultProfileDir = "Default"
	ProfileDirPrefix  = "Profile "
	unknownProfile    = "Unknown"
)

var infoCachePath = jp.MustParseString("$.profile.info_cache")

// LocalStatePath is where Chrome keeps its profile metadata on macOS.
func LocalStatePath(home string) string {
	return filepath.Join(home, "Library", "Application Support", "Google", "Chrome", "Local State")
}

// LoadProfiles reads Chrome's Local State file and returns profile
// directory -> display name. A missing file yields an empty map.
func LoadProfiles(localState string) (model.ProfileMap, error) {
	data, err := os.ReadFile(localState)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.ProfileMap{}, nil
		}
		return nil, fmt.Errorf("read Chrome Local State: %w", err)
	}

	doc, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse Chrome Local State: %w", err)
	}

	profiles := model.ProfileMap{}
	for _, cache := range infoCachePath.Get(doc) {
		entries, ok := cache.(map[string]any)
		if !ok {
			continue
		}
		for dir, info := range entries {
			m, ok := info.(map[string]any)
			if !ok {
				continue
			}
			name, _ := m["name"].(string)
			if name == "" {
				name = unknownProfile
			}
			profiles[dir] = name
		}
	}
	return profiles, nil
}

// IsProfileDir reports whether s already names a profile directory.
func IsProfileDir(s string) bool {
	return s == DefaultProfileDir || strings.HasPrefix(s, ProfileDirPrefix)
}

// ResolveProfile maps a profile display name to its directory,
// case-insensitively. Directory names and unknown names are returned
// unchanged and left for Chrome to interpret.
func ResolveProfile(input string, profiles model.ProfileMap) string {
	if IsProfileDir(input) {
		return input
	}
	dirs := make([]string, 0, len(profiles))
	for dir := range profiles {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	for _, dir := range dirs {
		if strings.EqualFold(profiles[dir], input) {
			return dir
		}
	}
	return input
}
