//go:build unix

package command

import (
	"os"

	"golang.org/x/sys/unix"
)

// isExecutable reports whether path is a non-directory the current user may execute.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}
