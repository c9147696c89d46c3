package fs

import "os"

// ReadFile reads the contents of a file.
func (f *realFS) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: "Reading file", Path: path, Err: err}
	}
	return data, nil
}
