package cli

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"earl/internal/model"
	"earl/internal/project"
)

type captureOptions struct {
	output            string
	overwrite         bool
	selectProfile     bool
	promptFrontWindow bool
}

func (a *App) captureCmd() *cobra.Command {
	capture := &cobra.Command{
		Use:   "capture",
		Short: "Capture current browser state",
	}

	var opts captureOptions
	chrome := &cobra.Command{
		Use:   "chrome",
		Short: "Generate a .earl.toml from the front Chrome window's tabs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.captureChrome(cmd.Context(), opts)
		},
	}

	fs := chrome.Flags()
	fs.StringVarP(&opts.output, "output", "o", "", "output file path (default ./"+project.DefaultFileName+")")
	fs.BoolVar(&opts.overwrite, "overwrite", false, "overwrite the output file if it exists")
	boolPair(fs, &opts.selectProfile, "select-profile", true, "choose the Chrome profile to write into [options]")
	boolPair(fs, &opts.promptFrontWindow, "prompt-front-window", true, "wait for the target Chrome window to be brought to the front")

	capture.AddCommand(chrome)
	return capture
}

func (a *App) captureChrome(ctx context.Context, opts captureOptions) error {
	if opts.promptFrontWindow {
		a.ui().Prompt("Bring target Chrome window to the front, then press Enter: ")
		if _, err := a.readLine(); err != nil {
			return err
		}
	}

	tabs := a.Tabs.FrontWindowTabs(ctx)
	if len(tabs) == 0 {
		return userError("No Chrome tabs found in the frontmost window")
	}

	urls := project.BuildURLs(tabs, a.PinnedPrefixes)
	if len(urls) == 0 {
		return userError("No http(s) tabs found in the frontmost window")
	}
	a.Log.Debug("Built project URLs", "tabs", len(tabs), "urls", len(urls))

	projOpts := model.Options{Browser: model.BrowserChrome}
	if opts.selectProfile {
		if name, dir, ok := a.selectChromeProfile(ctx); ok {
			projOpts.ChromeProfile = name
			projOpts.ProfileDirHint = dir
		}
	}

	out, err := a.outputPath(opts.output)
	if err != nil {
		return err
	}

	overwrite := opts.overwrite
	if !overwrite && model.Exists(out) {
		ok, err := a.confirm(out + " exists. Overwrite?")
		if err != nil {
			return err
		}
		if !ok {
			return &ExitError{Code: 1}
		}
		overwrite = true
	}

	text, err := project.Render(projOpts, urls)
	if err != nil {
		return userError("%v", err)
	}
	if err := project.Write(out, text, overwrite); err != nil {
		if errors.Is(err, project.ErrExists) {
			return userError("%v (use --overwrite)", err)
		}
		return userError("%v", err)
	}

	a.ui().Success("Wrote:", out)
	return nil
}

func (a *App) outputPath(flag string) (string, error) {
	if flag != "" {
		return model.ExpandHome(flag, a.Home), nil
	}
	cwd, err := a.Getwd()
	if err != nil {
		return "", userError("working directory: %v", err)
	}
	return filepath.Join(cwd, project.DefaultFileName), nil
}
