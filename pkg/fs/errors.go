// Package fs provides file system operations and error definitions.
package fs

import (
	"errors"
	"fmt"
)

// Error definitions for fs package.
var (
	// ErrFile is matched by every *FileError.
	ErrFile = errors.New("file error")
)

// FileError is returned by every failing FS operation.
type FileError struct {
	// Op is a human readable verb such as "Reading file".
	Op      string
	Path    string
	NewPath string
	Err     error
}

func (e *FileError) Error() string {
	if e.NewPath != "" {
		return fmt.Sprintf("%s %s to %s: %v", e.Op, e.Path, e.NewPath, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFile) match any *FileError.
func (e *FileError) Is(target error) bool {
	return target == ErrFile
}
