package git

import (
	"github.com/lerenn/wre-commit/pkg/command"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git repository lookups.
type Git interface {
	// GitDir returns the effective Git directory for the repository
	// containing root, preferring the common directory shared by worktrees.
	GitDir(root string) (string, error)
}

type realGit struct {
	runner command.Runner
}

// NewGit creates a new Git instance running commands through runner.
func NewGit(runner command.Runner) Git {
	return &realGit{runner: runner}
}
