package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"earl/internal/config"
	"earl/internal/model"
)

func (a *App) browseCmd() *cobra.Command {
	var copyURL bool

	cmd := &cobra.Command{
		Use:   "browse [filter]",
		Short: "Interactive: pick group, then URL",
		Long: `Pick a URL group, then a URL from it, and open it in the default browser.

The optional filter narrows the groups by substring, or by glob when it
contains * ? [ or { (for example "work.*"). A filter matching exactly one
group skips the group chooser.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) > 0 {
				filter = args[0]
			}
			return a.browse(cmd.Context(), filter, copyURL)
		},
	}
	cmd.Flags().BoolVarP(&copyURL, "copy", "c", false, "copy the URL to the clipboard instead of opening it")
	return cmd
}

func (a *App) browse(ctx context.Context, filter string, copyURL bool) error {
	tree, err := a.loadTree()
	if err != nil {
		return err
	}

	groups := tree.Groups()
	if len(groups) == 0 {
		return userWarning("No URL groups found")
	}

	group, err := a.selectGroup(ctx, groups, filter)
	if err != nil {
		return err
	}

	links := tree.Resolve(group)
	if len(links) == 0 {
		return userWarning("No URLs found in group '%s'", group)
	}

	name, err := a.choose(ctx, links.Names(), group+" > ", "Select URL to open (ESC to cancel)")
	if err != nil {
		return err
	}
	url, ok := links.Lookup(name)
	if !ok {
		return userError("unknown URL %q in group '%s'", name, group)
	}

	if copyURL {
		if err := a.Clipboard(url); err != nil {
			return userError("copy to clipboard: %v", err)
		}
		a.ui().Success("Copied:", fmt.Sprintf("%s (%s)", name, url))
		return nil
	}

	a.ui().Success("Opening:", name)
	a.Launcher.OpenDefault(ctx, []string{url})
	return nil
}

// selectGroup narrows groups by filter and picks one, skipping the chooser
// when only one group is left.
func (a *App) selectGroup(ctx context.Context, groups []string, filter string) (string, error) {
	candidates, err := config.FilterGroups(groups, filter)
	if err != nil {
		return "", userError("%v", err)
	}
	if len(candidates) == 0 {
		return "", userWarning("No groups found matching '%s'", filter)
	}
	if len(candidates) == 1 {
		a.ui().Item(model.IconGroup, candidates[0])
		return candidates[0], nil
	}
	return a.choose(ctx, candidates, "Select group > ", "Choose a URL group (ESC to cancel)")
}

func (a *App) openAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open-all <group>",
		Short: "Open all URLs from a global group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.openAll(cmd.Context(), args[0])
		},
	}
}

func (a *App) openAll(ctx context.Context, group string) error {
	tree, err := a.loadTree()
	if err != nil {
		return err
	}

	links := tree.Resolve(group)
	if len(links) == 0 {
		return userWarning("No URLs found in group '%s'", group)
	}

	a.ui().Success("Opening all URLs in group:", group)
	for _, link := range links {
		a.ui().Item(model.IconOpen, link.Name)
		a.Launcher.OpenDefault(ctx, []string{link.URL})
	}
	return nil
}
