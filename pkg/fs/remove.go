package fs

import (
	"os"
)

// Remove deletes a file.
func (f *realFS) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return &FileError{Op: "Deleting file", Path: path, Err: err}
	}
	return nil
}
