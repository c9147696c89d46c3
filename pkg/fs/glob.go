package fs

import (
	"path/filepath"
	"sort"
)

// Glob finds files matching the pattern, sorted.
func (f *realFS) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, &FileError{Op: "Matching pattern", Path: pattern, Err: err}
	}
	sort.Strings(matches)
	return matches, nil
}
