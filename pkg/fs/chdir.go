package fs

import "os"

// Chdir changes the current working directory.
func (f *realFS) Chdir(path string) error {
	if err := os.Chdir(path); err != nil {
		return &FileError{Op: "Changing directory to", Path: path, Err: err}
	}
	return nil
}

// Getwd returns the current working directory.
func (f *realFS) Getwd() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", &FileError{Op: "Getting working directory", Path: ".", Err: err}
	}
	return dir, nil
}
