package fs

import "os"

// Rename renames a file.
func (f *realFS) Rename(from, to string) error {
	if err := os.Rename(from, to); err != nil {
		return &FileError{Op: "Renaming file", Path: from, NewPath: to, Err: err}
	}
	return nil
}
