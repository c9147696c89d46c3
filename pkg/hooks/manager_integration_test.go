//go:build integration

package hooks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/wre-commit/pkg/command"
	"github.com/lerenn/wre-commit/pkg/fs"
	"github.com/lerenn/wre-commit/pkg/git"
	"github.com/lerenn/wre-commit/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupHookRepo creates a git repository and a fake wre-commit executable
// carrying the signature, and returns the executable and pre-commit hook paths.
func setupHookRepo(t *testing.T) (Manager, string, string) {
	t.Helper()

	executable := filepath.Join(t.TempDir(), "wre-commit")
	require.NoError(t, os.WriteFile(executable, []byte("#!/bin/sh\n# "+Signature+"\n"), 0755))

	return setupHookRepoFor(t, executable)
}

// setupHookRepoFor creates a git repository whose hooks link to executable.
func setupHookRepoFor(t *testing.T, executable string) (Manager, string, string) {
	t.Helper()

	tmpDir := git.SetupTestRepo(t)

	fsys := fs.NewFS()
	runner := command.NewRunner(command.NewRunnerParams{FS: fsys})
	manager := NewManager(NewManagerParams{
		FS:         fsys,
		Git:        git.NewGit(runner),
		Logger:     logger.NewNoopLogger(),
		Executable: executable,
		Root:       tmpDir,
	})

	return manager, executable, filepath.Join(tmpDir, ".git", "hooks", "pre-commit")
}

func TestManager_InstallUninstall_Integration(t *testing.T) {
	manager, executable, hookPath := setupHookRepo(t)

	require.NoError(t, manager.Install(SupportedHookTypes[:1]))
	require.NoError(t, manager.Install([]HookType{PreCommit}))

	dest, err := os.Readlink(hookPath)
	require.NoError(t, err)
	assert.Equal(t, executable, dest)

	// Installing twice leaves no backup
	_, err = os.Lstat(LegacyPath(hookPath))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, manager.Uninstall([]HookType{PreCommit}))
	_, err = os.Lstat(hookPath)
	assert.True(t, os.IsNotExist(err))
}

func TestManager_RecognizesCompiledBinary_Integration(t *testing.T) {
	// The test binary links this package, as the wre-commit binary does
	executable, err := os.Executable()
	require.NoError(t, err)
	executable, err = filepath.EvalSymlinks(executable)
	require.NoError(t, err)

	manager, _, hookPath := setupHookRepoFor(t, executable)

	require.NoError(t, manager.Install([]HookType{PreCommit}))
	require.NoError(t, manager.Install([]HookType{PreCommit}))

	_, err = os.Lstat(LegacyPath(hookPath))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, manager.Uninstall([]HookType{PreCommit}))
	_, err = os.Lstat(hookPath)
	assert.True(t, os.IsNotExist(err))
}

func TestManager_PreservesForeignHook_Integration(t *testing.T) {
	manager, executable, hookPath := setupHookRepo(t)

	foreign := []byte("#!/bin/sh\n# user hook\nexit 0\n")
	require.NoError(t, os.WriteFile(hookPath, foreign, 0755))

	require.NoError(t, manager.Install([]HookType{PreCommit}))
	require.NoError(t, manager.Install([]HookType{PreCommit}))

	backup, err := os.ReadFile(LegacyPath(hookPath))
	require.NoError(t, err)
	assert.Equal(t, foreign, backup)

	dest, err := os.Readlink(hookPath)
	require.NoError(t, err)
	assert.Equal(t, executable, dest)

	// Uninstall restores the foreign hook byte-for-byte
	require.NoError(t, manager.Uninstall([]HookType{PreCommit}))

	restored, err := os.ReadFile(hookPath)
	require.NoError(t, err)
	assert.Equal(t, foreign, restored)

	info, err := os.Lstat(hookPath)
	require.NoError(t, err)
	assert.Zero(t, info.Mode()&os.ModeSymlink)

	_, err = os.Lstat(LegacyPath(hookPath))
	assert.True(t, os.IsNotExist(err))
}

func TestManager_UninstallForeignHook_Integration(t *testing.T) {
	manager, _, hookPath := setupHookRepo(t)

	foreign := []byte("#!/bin/sh\n# user hook\n")
	require.NoError(t, os.WriteFile(hookPath, foreign, 0755))

	require.NoError(t, manager.Uninstall([]HookType{PreCommit}))

	content, err := os.ReadFile(hookPath)
	require.NoError(t, err)
	assert.Equal(t, foreign, content)
}
