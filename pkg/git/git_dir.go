package git

import (
	"path/filepath"
	"strings"

	"github.com/lerenn/wre-commit/pkg/command"
)

// gitDirOptions are queried in order; old git versions echo unknown options back.
var gitDirOptions = []string{"--git-common-dir", "--git-dir"}

// GitDir gets the Git directory for the repository containing root.
// Relative answers are resolved against root.
func (g *realGit) GitDir(root string) (string, error) {
	argv := append([]string{"git", "rev-parse"}, gitDirOptions...)
	output, err := g.runner.Run(argv, root)
	if err != nil {
		return "", err
	}

	lines := strings.Split(strings.ReplaceAll(output, "\r\n", "\n"), "\n")
	for i, opt := range gitDirOptions {
		if i >= len(lines) {
			break
		}
		line := lines[i]
		if line == "" || line == opt {
			continue
		}
		if filepath.IsAbs(line) {
			return filepath.Clean(line), nil
		}
		return filepath.Clean(filepath.Join(root, line)), nil
	}

	return "", command.NewCommandError(MsgNoGitDir)
}
