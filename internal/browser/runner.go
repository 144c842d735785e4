// Package browser drives the operating system and browsers: opening URLs,
// listing and pinning Chrome tabs, and reading Chrome's profile list.
//
// Every subprocess goes through a Runner so callers can substitute a fake.
// Subprocesses run synchronously and without a timeout beyond the caller's
// context, so a hung osascript hangs the command that started it.
package browser

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

const (
	OpenBin      = "open"
	OsascriptBin = "osascript"
)

// Runner executes a command and returns its stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs real processes.
type ExecRunner struct{}

// Run executes name with args. A non-zero exit is reported with the
// command's stderr when it printed any.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return stdout.Bytes(), fmt.Errorf("%s: %s", name, msg)
		}
		return stdout.Bytes(), fmt.Errorf("%s: %w", name, err)
	}
	return stdout.Bytes(), nil
}

// osascript runs an AppleScript source through r.
func osascript(ctx context.Context, r Runner, script string) ([]byte, error) {
	return r.Run(ctx, OsascriptBin, "-e", script)
}

// appleScriptString quotes s for use as an AppleScript string literal.
func appleScriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
