package config

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// FilterGroups keeps the groups matching filter. A plain filter is a
// substring match; a filter with glob metacharacters is matched against
// the whole path with "." as the segment separator, so "work.*" matches
// "work.aws" but not "work.aws.prod".
func FilterGroups(groups []string, filter string) ([]string, error) {
	if filter == "" {
		return groups, nil
	}

	match := func(g string) bool { return strings.Contains(g, filter) }
	if strings.ContainsAny(filter, "*?[{") {
		g, err := glob.Compile(filter, '.')
		if err != nil {
			return nil, fmt.Errorf("invalid group pattern %q: %w", filter, err)
		}
		match = g.Match
	}

	var out []string
	for _, group := range groups {
		if match(group) {
			out = append(out, group)
		}
	}
	return out, nil
}
