package picker

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"earl/internal/tui"
)

// Builtin is a chooser that needs no external program. It reads keys from
// In and draws on Out, which default to stdin and stderr so stdout stays
// free for command output.
type Builtin struct {
	In  *os.File
	Out *os.File
}

func (b *Builtin) Choose(ctx context.Context, items []string, prompt, header string) (string, bool, error) {
	if len(items) == 0 {
		return "", false, nil
	}

	in, out := b.In, b.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	if !term.IsTerminal(int(in.Fd())) {
		return "", false, fmt.Errorf("%w: built-in chooser needs a terminal", ErrUnavailable)
	}

	p := tea.NewProgram(tui.New(items, prompt, header),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("built-in chooser: %w", err)
	}

	m, ok := final.(tui.Model)
	if !ok || !m.Chosen {
		return "", false, nil
	}
	return m.Choice, true, nil
}
