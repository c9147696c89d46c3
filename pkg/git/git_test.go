//go:build integration

package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/lerenn/wre-commit/pkg/command"
	"github.com/lerenn/wre-commit/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGit() Git {
	return NewGit(command.NewRunner(command.NewRunnerParams{FS: fs.NewFS()}))
}

func TestGit_GitDir_Repository(t *testing.T) {
	git := newTestGit()
	tmpDir := SetupTestRepo(t)

	dir, err := git.GitDir(".")
	require.NoError(t, err)
	assert.Equal(t, ".git", dir)

	// From a subdirectory, the answer is resolved against the given root
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "sub"), 0755))
	dir, err = git.GitDir("sub")
	require.NoError(t, err)
	assertSameDir(t, filepath.Join(tmpDir, ".git"), dir)
}

func assertSameDir(t *testing.T, expected, actual string) {
	t.Helper()
	expected, err := filepath.EvalSymlinks(expected)
	require.NoError(t, err)
	actual, err = filepath.EvalSymlinks(actual)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestGit_GitDir_Worktree(t *testing.T) {
	git := newTestGit()
	tmpDir := SetupTestRepo(t)

	worktreePath := filepath.Join(tmpDir, "wt")
	cmd := exec.Command("git", "worktree", "add", worktreePath)
	require.NoError(t, cmd.Run())

	// Hooks are shared: a linked worktree resolves to the main repository's directory
	dir, err := git.GitDir(worktreePath)
	require.NoError(t, err)
	assertSameDir(t, filepath.Join(tmpDir, ".git"), dir)
}

func TestGit_GitDir_NotARepository(t *testing.T) {
	git := newTestGit()

	_, err := git.GitDir(t.TempDir())
	assert.ErrorIs(t, err, command.ErrCommand)
}
