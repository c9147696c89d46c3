package fs

import (
	"os"
)

// WriteTempFile creates a new temporary file in dir with the given name
// prefix and suffix, writes data to it and returns its path.
// The caller owns the file and must remove it.
func (f *realFS) WriteTempFile(dir, prefix, suffix string, data []byte) (string, error) {
	tmpFile, err := os.CreateTemp(dir, prefix+"*"+suffix)
	if err != nil {
		return "", &FileError{Op: "Creating temporary file in", Path: dir, Err: err}
	}
	tmpPath := tmpFile.Name()

	// Write data to temporary file
	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return "", &FileError{Op: "Writing file", Path: tmpPath, Err: err}
	}

	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", &FileError{Op: "Writing file", Path: tmpPath, Err: err}
	}

	return tmpPath, nil
}
