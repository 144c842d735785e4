package cli

import (
	"errors"
	"fmt"
)

// errCancelled ends a command quietly with exit code 0.
var errCancelled = errors.New("cancelled")

// ExitError is a user-facing failure with its exit code. Warning errors
// are printed in the warning style.
type ExitError struct {
	Code    int
	Err     error
	Warning bool
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func userError(format string, args ...any) error {
	return &ExitError{Code: 1, Err: fmt.Errorf(format, args...)}
}

func userWarning(format string, args ...any) error {
	return &ExitError{Code: 1, Err: fmt.Errorf(format, args...), Warning: true}
}
