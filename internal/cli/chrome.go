package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"earl/internal/picker"
)

func (a *App) chromeCmd() *cobra.Command {
	chrome := &cobra.Command{
		Use:   "chrome",
		Short: "Chrome helpers",
	}
	chrome.AddCommand(&cobra.Command{
		Use:   "profiles",
		Short: "List Chrome profiles (directory -> name)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.listProfiles()
		},
	})
	return chrome
}

func (a *App) listProfiles() error {
	profiles, err := a.Profiles()
	if err != nil {
		return userError("%v", err)
	}
	if len(profiles) == 0 {
		return userWarning("Chrome Local State file not found. Is Chrome installed?")
	}

	dirs := make([]string, 0, len(profiles))
	for dir := range profiles {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	r := a.ui().r
	dirStyle := r.NewStyle().Foreground(lipgloss.Color("14")).Padding(0, 1)
	nameStyle := r.NewStyle().Foreground(lipgloss.Color("10")).Padding(0, 1)
	headerStyle := r.NewStyle().Bold(true).Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("63"))).
		Headers("Directory", "Profile Name").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return dirStyle
			default:
				return nameStyle
			}
		})
	for _, dir := range dirs {
		t.Row(dir, profiles[dir])
	}

	fmt.Fprintln(a.Out, t.Render())
	return nil
}

// selectChromeProfile lets the user pick a profile to record in a project
// file. ok is false when there are no profiles, no chooser, or the user
// cancelled; the caller then writes a placeholder.
func (a *App) selectChromeProfile(ctx context.Context) (name, dir string, ok bool) {
	profiles, err := a.Profiles()
	if err != nil {
		a.Log.Warn("Could not read Chrome profiles", "err", err)
		return "", "", false
	}
	if len(profiles) == 0 {
		return "", "", false
	}

	type entry struct{ name, dir string }
	entries := make([]entry, 0, len(profiles))
	for d, n := range profiles {
		entries = append(entries, entry{name: n, dir: d})
	}
	sort.Slice(entries, func(i, j int) bool {
		li, lj := strings.ToLower(entries[i].name), strings.ToLower(entries[j].name)
		if li != lj {
			return li < lj
		}
		return entries[i].dir < entries[j].dir
	})

	items := make([]string, len(entries))
	byDisplay := make(map[string]entry, len(entries))
	for i, e := range entries {
		items[i] = fmt.Sprintf("%s (%s)", e.name, e.dir)
		byDisplay[items[i]] = e
	}

	choice, ok, err := a.Chooser.Choose(ctx, items, "Profile > ", "Select Chrome profile for .earl.toml (ESC for placeholder)")
	if err != nil {
		if !errors.Is(err, picker.ErrUnavailable) {
			a.Log.Warn("Profile chooser failed", "err", err)
		} else {
			a.Log.Debug("No chooser for profile selection", "err", err)
		}
		return "", "", false
	}
	if !ok {
		return "", "", false
	}
	e, found := byDisplay[choice]
	if !found {
		return "", "", false
	}
	return e.name, e.dir, true
}
