package browser

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

type call struct {
	Name string
	Args []string
}

func (c call) String() string { return c.Name + " " + strings.Join(c.Args, " ") }

// fakeRunner records every command and replies from a script.
type fakeRunner struct {
	calls  []call
	output []byte
	// fail returns an error for calls whose joined args contain the key.
	fail map[string]error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	c := call{Name: name, Args: append([]string(nil), args...)}
	f.calls = append(f.calls, c)
	for key, err := range f.fail {
		if strings.Contains(c.String(), key) {
			return nil, err
		}
	}
	return f.output, nil
}

type fakePinner struct {
	attempts []int
	failOn   map[int]bool
}

func (p *fakePinner) PinTab(_ context.Context, index int) error {
	p.attempts = append(p.attempts, index)
	if p.failOn[index] {
		return errors.New("menu item not found")
	}
	return nil
}

func quietLogger() *log.Logger { return log.New(io.Discard) }
