//go:build integration

package dispatch

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lerenn/wre-commit/pkg/command"
	"github.com/lerenn/wre-commit/pkg/config"
	"github.com/lerenn/wre-commit/pkg/fs"
	"github.com/lerenn/wre-commit/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner is a pre-commit stand-in printing the configuration it was
// given and exiting with the code found under its exit_code key.
const fakeRunner = `#!/bin/sh
for arg in "$@"; do
	case "$arg" in
	--config=*) config="${arg#--config=}" ;;
	esac
done
echo "config: $config"
code=$(sed -n 's/^exit_code: //p' "$config")
exit "${code:-0}"
`

func setupDispatch(t *testing.T) (Dispatcher, *bytes.Buffer, string) {
	t.Helper()

	binDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "pre-commit"), []byte(fakeRunner), 0755))

	workDir := t.TempDir()
	t.Chdir(workDir)

	stdout := &bytes.Buffer{}
	fsys := fs.NewFS()
	dispatcher := NewDispatcher(NewDispatcherParams{
		FS: fsys,
		Runner: command.NewRunner(command.NewRunnerParams{
			FS:         fsys,
			SearchPath: binDir,
			Stdin:      strings.NewReader(""),
			Stdout:     stdout,
			Stderr:     stdout,
		}),
		Logger: logger.NewNoopLogger(),
		Config: config.Default(),
	})

	return dispatcher, stdout, workDir
}

func TestDispatcher_Run_Integration(t *testing.T) {
	dispatcher, stdout, workDir := setupDispatch(t)

	multi := "exit_code: 0\n---\nexit_code: 2\n"
	require.NoError(t, os.WriteFile(filepath.Join(workDir, ".pre-commit-config.yaml"), []byte(multi), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(workDir, ".pre-commit-config-extra.yaml"), []byte("exit_code: 1\n"), 0644))

	code, err := dispatcher.Run(Request{Opts: []string{"run"}, Command: "run", WorkDir: workDir})
	require.NoError(t, err)
	assert.Equal(t, 2, code)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "config: .pre-commit-config-extra.yaml", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "config: "+filepath.Join(workDir, ".pre-commit-config-")))
	assert.True(t, strings.HasPrefix(lines[2], "config: "+filepath.Join(workDir, ".pre-commit-config-")))
	assert.NotEqual(t, lines[1], lines[2])

	// Temporary documents are gone
	entries, err := os.ReadDir(workDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestDispatcher_Run_FailFast_Integration(t *testing.T) {
	dispatcher, stdout, workDir := setupDispatch(t)

	content := "fail_fast: true\nexit_code: 3\n---\nexit_code: 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(workDir, ".pre-commit-config.yaml"), []byte(content), 0644))

	code, err := dispatcher.Run(Request{WorkDir: workDir})
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Equal(t, 1, strings.Count(stdout.String(), "config: "))

	entries, err := os.ReadDir(workDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDispatcher_Run_NoConfig_Integration(t *testing.T) {
	dispatcher, stdout, workDir := setupDispatch(t)

	code, err := dispatcher.Run(Request{WorkDir: workDir})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout.String())
}
