package analyzer

import (
	"errors"
	"fmt"
)

// ErrInterrupted reports that an analysis was cancelled before it
// finished walking the tree.
var ErrInterrupted = errors.New("analysis interrupted")

// InvalidInputError reports that the requested path cannot be analyzed
// because it does not name an existing directory.
type InvalidInputError struct {
	Path string
	Err  error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("'%s' is not a valid directory", e.Path)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}
