package command

import (
	"path/filepath"
)

// Which finds the executable path for a command by scanning each directory
// of the search path in order. The first executable match wins.
func (r *realRunner) Which(name string) (string, error) {
	for _, dir := range filepath.SplitList(r.searchPath) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	return "", &CommandError{Name: name, Message: "Executable `" + name + "`", Err: ErrNotFound}
}
