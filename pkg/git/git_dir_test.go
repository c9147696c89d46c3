//go:build unit

package git

import (
	"testing"

	"github.com/lerenn/wre-commit/pkg/command"
	commandmocks "github.com/lerenn/wre-commit/pkg/command/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var revParse = []string{"git", "rev-parse", "--git-common-dir", "--git-dir"}

func TestGit_GitDir(t *testing.T) {
	tests := []struct {
		name     string
		root     string
		output   string
		expected string
	}{
		{name: "relative common dir", root: ".", output: ".git\n.git\n", expected: ".git"},
		{name: "relative to root", root: "/repo/sub", output: "../.git\n../.git\n", expected: "/repo/.git"},
		{name: "absolute common dir", root: ".", output: "/repo/.git\n/repo/.git/worktrees/wt\n", expected: "/repo/.git"},
		{name: "old git echoes common dir option", root: ".", output: "--git-common-dir\n.git\n", expected: ".git"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRunner := commandmocks.NewMockRunner(ctrl)
			git := NewGit(mockRunner)

			mockRunner.EXPECT().Run(revParse, tt.root).Return(tt.output, nil)

			dir, err := git.GitDir(tt.root)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, dir)
		})
	}
}

func TestGit_GitDir_NotDetected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := commandmocks.NewMockRunner(ctrl)
	git := NewGit(mockRunner)

	mockRunner.EXPECT().Run(revParse, ".").Return("--git-common-dir\n--git-dir\n", nil)

	_, err := git.GitDir(".")
	assert.ErrorIs(t, err, command.ErrCommand)
	assert.EqualError(t, err, "No git dir detected")
}

func TestGit_GitDir_CommandFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := commandmocks.NewMockRunner(ctrl)
	git := NewGit(mockRunner)

	runErr := &command.CommandError{Name: "git", Message: "Execution of command `git` failed"}
	mockRunner.EXPECT().Run(revParse, ".").Return("", runErr)

	_, err := git.GitDir(".")
	assert.Equal(t, runErr, err)
}
