package timeline

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// BuildError represents a failure in one stage of a build.
type BuildError struct {
	Stage string // "read", "write"
	Path  string
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewBuildError creates a new BuildError.
func NewBuildError(stage, path string, err error) *BuildError {
	return &BuildError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}
