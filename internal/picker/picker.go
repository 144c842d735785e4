// Package picker asks the user to choose one string from a list.
package picker

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable means no chooser could be started. Cancelling a chooser
// is not an error.
var ErrUnavailable = errors.New("chooser unavailable")

// Chooser presents items and blocks until the user picks one or cancels.
// ok is false when the user cancelled or there was nothing to choose.
type Chooser interface {
	Choose(ctx context.Context, items []string, prompt, header string) (choice string, ok bool, err error)
}

const (
	KindFzf     = "fzf"
	KindBuiltin = "builtin"
)

// New returns the chooser named by kind.
func New(kind string) (Chooser, error) {
	switch kind {
	case "", KindFzf:
		return &Fzf{}, nil
	case KindBuiltin:
		return &Builtin{}, nil
	default:
		return nil, fmt.Errorf("unknown picker %q (want %s or %s)", kind, KindFzf, KindBuiltin)
	}
}
