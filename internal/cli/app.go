// Package cli wires the config store, project files, browsers and choosers
// into earl's commands.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"

	"earl/internal/browser"
	"earl/internal/config"
	"earl/internal/model"
	"earl/internal/picker"
	"earl/internal/project"
)

// App holds everything a command touches. Tests swap the OS-facing fields
// for fakes.
type App struct {
	Paths config.Paths
	Home  string

	In  io.Reader
	Out io.Writer
	Err io.Writer
	Log *log.Logger

	Chooser        picker.Chooser // nil: chosen by --picker
	Launcher       *browser.Launcher
	Tabs           browser.TabSource
	Profiles       func() (model.ProfileMap, error)
	Clipboard      func(text string) error
	Getwd          func() (string, error)
	PinnedPrefixes []string

	// Flags
	configPath string
	pickerKind string
	verbose    bool

	con    *console
	reader *bufio.Reader
}

// NewApp wires an App for the real system. env and home are read once by
// the caller.
func NewApp(env config.Env, home string) *App {
	logger := newLogger(os.Stderr)
	runner := browser.ExecRunner{}
	localState := browser.LocalStatePath(home)

	return &App{
		Paths:    config.ResolvePath(env, home),
		Home:     home,
		In:       os.Stdin,
		Out:      os.Stdout,
		Err:      os.Stderr,
		Log:      logger,
		Launcher: browser.NewLauncher(runner, runtime.GOOS, localState, logger),
		Tabs:     &browser.ChromeTabs{Runner: runner, Log: logger},
		Profiles: func() (model.ProfileMap, error) {
			return browser.LoadProfiles(localState)
		},
		Clipboard:      clipboard.WriteAll,
		Getwd:          os.Getwd,
		PinnedPrefixes: project.DefaultPinnedPrefixes,
	}
}

// Execute runs the command line in args and returns the process exit code.
func Execute(ctx context.Context, a *App, args []string) int {
	if args == nil {
		args = []string{}
	}
	root := a.RootCmd()
	root.SetArgs(args)
	return a.report(root.ExecuteContext(ctx))
}

func (a *App) ui() *console {
	if a.con == nil {
		a.con = newConsole(a.Out, a.Err)
	}
	return a.con
}

// setup applies the global flags. It runs before every command.
func (a *App) setup() error {
	if a.verbose {
		a.Log.SetLevel(log.DebugLevel)
	}
	if a.configPath != "" {
		a.Paths = config.Paths{URLsFile: model.ExpandHome(a.configPath, a.Home)}
	}
	if a.Chooser == nil {
		c, err := picker.New(a.pickerKind)
		if err != nil {
			return userError("%v", err)
		}
		a.Chooser = c
	}
	return nil
}

// report prints err, if any, and maps it to an exit code.
func (a *App) report(err error) int {
	if err == nil || errors.Is(err, errCancelled) {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			if exitErr.Warning {
				a.ui().Warn(exitErr.Err.Error())
			} else {
				a.ui().Error(exitErr.Err.Error())
			}
		}
		return exitErr.Code
	}
	a.ui().Error(err.Error())
	return 1
}

// choose runs the chooser. Cancelling yields errCancelled.
func (a *App) choose(ctx context.Context, items []string, prompt, header string) (string, error) {
	choice, ok, err := a.Chooser.Choose(ctx, items, prompt, header)
	if err != nil {
		if errors.Is(err, picker.ErrUnavailable) {
			return "", userError("%v", err)
		}
		return "", err
	}
	if !ok {
		return "", errCancelled
	}
	return choice, nil
}

// readLine reads one line of user input. EOF counts as an empty answer.
func (a *App) readLine() (string, error) {
	if a.reader == nil {
		a.reader = bufio.NewReader(a.In)
	}
	line, err := a.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question defaulting to no.
func (a *App) confirm(question string) (bool, error) {
	a.ui().Prompt(question + " [y/N]: ")
	answer, err := a.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// loadTree loads the global urls file and logs structural warnings. A
// legacy dotfiles copy is migrated first unless --config was given.
func (a *App) loadTree() (*config.Tree, error) {
	migrated, err := config.Migrate(a.Paths)
	if err != nil {
		a.Log.Warn("Could not migrate urls file", "from", a.Paths.Legacy, "err", err)
	} else if migrated {
		a.ui().Success("Migrated:", fmt.Sprintf("%s -> %s", a.Paths.Legacy, a.Paths.URLsFile))
	}

	tree, err := config.Load(a.Paths.URLsFile)
	switch {
	case errors.Is(err, config.ErrNotFound):
		return nil, userError("URLs file not found at %s", a.Paths.URLsFile)
	case err != nil:
		return nil, userError("%v", err)
	}
	for _, w := range tree.Warnings() {
		a.Log.Warn(w, "file", a.Paths.URLsFile)
	}
	return tree, nil
}
