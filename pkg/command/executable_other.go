//go:build !unix

package command

import (
	"os"
)

// isExecutable reports whether path is a regular file.
// TODO: honor PATHEXT once non-Unix hosts are supported.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
