//go:build unit

package command

import (
	"errors"
	"testing"

	"github.com/lerenn/wre-commit/pkg/fs"
	fsmocks "github.com/lerenn/wre-commit/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunner_Run_RestoresDirectoryOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	runner := &realRunner{fs: mockFS}

	gomock.InOrder(
		mockFS.EXPECT().Getwd().Return("/original", nil),
		mockFS.EXPECT().Chdir("/work").Return(nil),
		mockFS.EXPECT().Chdir("/original").Return(nil),
	)

	_, err := runner.Run([]string{"wre-commit-non-existing-command-xyz123", "arg"}, "/work")
	assert.ErrorIs(t, err, ErrCommand)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "wre-commit-non-existing-command-xyz123", cmdErr.Name)
	assert.Contains(t, err.Error(), "Execution of command `wre-commit-non-existing-command-xyz123` failed")
}

func TestRunner_Run_ChdirFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	runner := &realRunner{fs: mockFS}

	chdirErr := &fs.FileError{Op: "Changing directory to", Path: "/missing", Err: errors.New("no such file or directory")}
	mockFS.EXPECT().Getwd().Return("/original", nil)
	mockFS.EXPECT().Chdir("/missing").Return(chdirErr)

	_, err := runner.Run([]string{"git", "status"}, "/missing")
	assert.ErrorIs(t, err, fs.ErrFile)
}

func TestRunner_Run_RestoreFailureIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	runner := &realRunner{fs: mockFS}

	restoreErr := &fs.FileError{Op: "Changing directory to", Path: "/original", Err: errors.New("gone")}
	mockFS.EXPECT().Getwd().Return("/original", nil)
	mockFS.EXPECT().Chdir("/work").Return(nil)
	mockFS.EXPECT().Chdir("/original").Return(restoreErr)

	// The command error takes precedence over the restore error
	_, err := runner.Run([]string{"wre-commit-non-existing-command-xyz123"}, "/work")
	assert.ErrorIs(t, err, ErrCommand)
}

func TestRunner_Run_EmptyCommand(t *testing.T) {
	runner := &realRunner{}

	_, err := runner.Run(nil, "")
	assert.ErrorIs(t, err, ErrEmptyCommand)

	_, err = runner.Call(nil)
	assert.ErrorIs(t, err, ErrEmptyCommand)
}

func TestCommandError_Message(t *testing.T) {
	assert.Equal(t, "No git dir detected", NewCommandError("No git dir detected").Error())

	err := &CommandError{Name: "pre-commit", Message: "Executable `pre-commit`", Err: ErrNotFound}
	assert.Equal(t, "Executable `pre-commit`: not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrCommand)
}

func TestRunner_Shebang_ReadsThroughFS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	runner := NewRunner(NewRunnerParams{FS: mockFS})

	mockFS.EXPECT().ReadFile("/usr/bin/pre-commit").
		Return([]byte("#!/opt/venv/bin/python3\n# -*- coding: utf-8 -*-\n"), nil)

	interpreter, err := runner.Shebang("/usr/bin/pre-commit")
	require.NoError(t, err)
	assert.Equal(t, "/opt/venv/bin/python3", interpreter)
}

func TestRunner_Shebang_UnreadableFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	runner := NewRunner(NewRunnerParams{FS: mockFS})

	readErr := &fs.FileError{Op: "Reading file", Path: "/usr/bin/pre-commit", Err: errors.New("permission denied")}
	mockFS.EXPECT().ReadFile("/usr/bin/pre-commit").Return(nil, readErr)

	_, err := runner.Shebang("/usr/bin/pre-commit")
	assert.ErrorIs(t, err, ErrCommand)
	assert.ErrorIs(t, err, fs.ErrFile)
	assert.EqualError(t, err,
		"Getting shebang from file /usr/bin/pre-commit: Reading file /usr/bin/pre-commit: permission denied")
}
