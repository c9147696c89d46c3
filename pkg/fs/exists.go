package fs

import "os"

// Exists checks if a file exists at the given path, following symlinks.
// A dangling symlink does not exist.
func (f *realFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, &FileError{Op: "Checking file", Path: path, Err: err}
}

// Lexists checks if a file or symlink exists at the given path.
func (f *realFS) Lexists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, &FileError{Op: "Checking file", Path: path, Err: err}
}
