package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"earl/internal/model"
	"earl/internal/project"
)

func (a *App) projectCmd() *cobra.Command {
	proj := &cobra.Command{
		Use:   "project",
		Short: "Project URL sets (" + project.DefaultFileName + ")",
	}
	proj.AddCommand(&cobra.Command{
		Use:   "open [path]",
		Short: "Open all URLs from a " + project.DefaultFileName + " (explicit path or nearest parent search)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return a.projectOpen(cmd.Context(), path)
		},
	})
	return proj
}

func (a *App) projectOpen(ctx context.Context, explicit string) error {
	path, err := a.projectPath(explicit)
	if err != nil {
		return err
	}

	a.ui().Success("Opening URLs from:", path)
	f, err := project.Load(path)
	if err != nil {
		return userError("%v", err)
	}
	for _, w := range f.Warnings {
		a.ui().Skipped(w)
	}
	if len(f.URLs) == 0 {
		return userWarning("No URLs found")
	}

	for _, u := range f.URLs {
		icon, label := model.IconOpen, u.Name
		if u.Pinned {
			icon, label = model.IconPinned, a.ui().Pinned(label)
		}
		a.ui().Item(icon, label)
	}

	if f.Options.Browser == model.BrowserChrome && f.Options.ChromeProfile == "" {
		a.Log.Warn("chrome_profile is not set; Chrome will use its last profile", "file", path)
	}

	errs := a.Launcher.Open(ctx, f.Options.Browser, f.Links(), f.Options.ChromeProfile, f.PinnedIndices())
	if len(errs) > 0 {
		a.ui().Warning(fmt.Sprintf("%d browser action(s) failed; see messages above", len(errs)))
	}
	return nil
}

func (a *App) projectPath(explicit string) (string, error) {
	if explicit != "" {
		path := model.ExpandHome(explicit, a.Home)
		if !model.Exists(path) {
			return "", userError("Project file not found: %s", path)
		}
		return path, nil
	}

	cwd, err := a.Getwd()
	if err != nil {
		return "", userError("working directory: %v", err)
	}
	path, err := project.Find(cwd)
	if err != nil {
		return "", userError("No %s found in current directory or parents", project.DefaultFileName)
	}
	return path, nil
}
