package fs

import "os"

// Symlink creates a symlink at path pointing to target.
func (f *realFS) Symlink(target, path string) error {
	if err := os.Symlink(target, path); err != nil {
		return &FileError{Op: "Symlinking file", Path: target, NewPath: path, Err: err}
	}
	return nil
}
