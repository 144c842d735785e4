package project

import (
	"errors"
	"fmt"

	"earl/internal/model"
)

// DefaultFileName is the project file looked up from the working directory.
const DefaultFileName = ".earl.toml"

// ErrExists is returned by Write when the target exists and overwriting
// was not allowed.
var ErrExists = errors.New("file already exists")

// Write stores text at path. An existing file is only replaced when
// overwrite is set, and the replacement is atomic.
func Write(path, text string, overwrite bool) error {
	if !overwrite && model.Exists(path) {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}
	return model.WriteFileAtomic(path, []byte(text), 0o644)
}

// Find returns the nearest project file in dir or one of its parents.
func Find(dir string) (string, error) {
	path, ok := model.FindUpward(dir, DefaultFileName)
	if !ok {
		return "", fmt.Errorf("%w: no %s in %s or its parents", ErrNotFound, DefaultFileName, dir)
	}
	return path, nil
}
