package picker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Fzf runs the fzf fuzzy finder. Items go in on stdin and the selection
// comes back on stdout; fzf draws its UI on the terminal directly.
type Fzf struct {
	Bin    string    // defaults to "fzf"
	Stderr io.Writer // defaults to os.Stderr
}

// Args returns the fzf command line for prompt and header.
func Args(prompt, header string) []string {
	args := []string{
		"--height=40%",
		"--reverse",
		"--border",
		"--prompt=" + prompt,
	}
	if header != "" {
		args = append(args, "--header="+header)
	}
	return args
}

func (f *Fzf) Choose(ctx context.Context, items []string, prompt, header string) (string, bool, error) {
	if len(items) == 0 {
		return "", false, nil
	}

	bin := f.Bin
	if bin == "" {
		bin = "fzf"
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", false, fmt.Errorf("%w: %s is not installed (brew install fzf)", ErrUnavailable, bin)
	}

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, path, Args(prompt, header)...)
	cmd.Stdin = strings.NewReader(strings.Join(items, "\n"))
	cmd.Stdout = &stdout
	cmd.Stderr = f.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err = cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		choice := strings.TrimRight(stdout.String(), "\r\n")
		return choice, choice != "", nil
	case errors.As(err, &exitErr) && (exitErr.ExitCode() == 1 || exitErr.ExitCode() == 130):
		// 1: no match, 130: interrupted with esc or ctrl-c
		return "", false, nil
	default:
		return "", false, fmt.Errorf("fzf: %w", err)
	}
}
