package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"earl/internal/model"
	"earl/internal/picker"
)

// RootCmd builds the earl command tree. With no subcommand it browses.
func (a *App) RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "earl",
		Short: "Earl - Your friendly URL launcher",
		Long: `Earl opens URLs from named groups in urls.toml, and captures and
replays sets of browser tabs stored in a per-project .earl.toml.

Run with no arguments to pick a group and a URL interactively.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.browse(cmd.Context(), "", false)
		},
	}
	root.SetIn(a.In)
	root.SetOut(a.Out)
	root.SetErr(a.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "urls file (default $EARL_DIR/urls.toml or ~/.config/earl/urls.toml)")
	pf.StringVar(&a.pickerKind, "picker", picker.KindFzf, "chooser to use: fzf or builtin")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug details to stderr")

	root.AddCommand(a.browseCmd())
	root.AddCommand(a.openAllCmd())
	root.AddCommand(a.chromeCmd())
	root.AddCommand(a.projectCmd())
	root.AddCommand(a.captureCmd())
	root.AddCommand(a.versionCmd())
	return root
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.Out, "earl version %s\n", model.Version)
			return nil
		},
	}
}
