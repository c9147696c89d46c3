//go:build e2e

package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// binaryPath is the wre-commit binary built for the whole suite.
var binaryPath string

// fakeRunner is a pre-commit stand-in. It logs its arguments and exits with
// the code found under the exit_code key of the configuration it was given.
const fakeRunner = `#!/bin/sh
echo "$*" >> "$WRE_COMMIT_E2E_LOG"
config=
prev=
for arg in "$@"; do
	case "$arg" in
	--config=*) config="${arg#--config=}" ;;
	esac
	if [ "$prev" = "--config" ]; then
		config="$arg"
	fi
	prev="$arg"
done
code=0
if [ -n "$config" ]; then
	code=$(sed -n 's/^exit_code: //p' "$config")
fi
exit "${code:-0}"
`

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir  string
	RepoPath string
	BinDir   string
	LogPath  string
}

// setupTestEnvironment creates a git repository and a directory holding the
// fake pre-commit runner.
func setupTestEnvironment(t *testing.T) *TestSetup {
	t.Helper()

	tempDir := t.TempDir()
	setup := &TestSetup{
		TempDir:  tempDir,
		RepoPath: filepath.Join(tempDir, "repo"),
		BinDir:   filepath.Join(tempDir, "bin"),
		LogPath:  filepath.Join(tempDir, "runner.log"),
	}

	require.NoError(t, os.MkdirAll(setup.RepoPath, 0755))
	require.NoError(t, os.MkdirAll(setup.BinDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(setup.BinDir, "pre-commit"), []byte(fakeRunner), 0755))

	createTestGitRepo(t, setup.RepoPath)
	return setup
}

// createTestGitRepo initializes a git repository with a configured user.
func createTestGitRepo(t *testing.T, repoPath string) {
	t.Helper()

	for _, args := range [][]string{
		{"init"},
		{"config", "user.name", "Test User"},
		{"config", "user.email", "test@example.com"},
		{"config", "commit.gpgsign", "false"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = repoPath
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, string(output))
	}
}

// environ returns the environment the commands of a test run with: the
// fake runner first in PATH, no git hook variables and no user settings.
func (s *TestSetup) environ(extra ...string) []string {
	var env []string
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		switch key {
		case "PATH", "GIT_AUTHOR_DATE", "WRE_COMMIT_DEBUG", "WRE_COMMIT_SETTINGS":
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"PATH="+s.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"),
		"WRE_COMMIT_SETTINGS="+filepath.Join(s.TempDir, "settings.yaml"),
		"WRE_COMMIT_E2E_LOG="+s.LogPath,
	)
	return append(env, extra...)
}

// result is the outcome of a command run in the repository.
type result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// runIn runs name with args in the repository.
func (s *TestSetup) runIn(t *testing.T, env []string, name string, args ...string) result {
	t.Helper()

	var stdout, stderr strings.Builder
	cmd := exec.Command(name, args...)
	cmd.Dir = s.RepoPath
	cmd.Env = env
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	} else {
		require.NoError(t, err)
	}

	return result{ExitCode: code, Stdout: stdout.String(), Stderr: stderr.String()}
}

// wreCommit runs the wre-commit binary by hand.
func (s *TestSetup) wreCommit(t *testing.T, args ...string) result {
	t.Helper()
	return s.runIn(t, s.environ(), binaryPath, args...)
}

// commit runs git commit, which triggers the installed hooks.
func (s *TestSetup) commit(t *testing.T, extraEnv ...string) result {
	t.Helper()
	env := s.environ(append([]string{"GIT_AUTHOR_DATE=2024-01-01T00:00:00"}, extraEnv...)...)
	return s.runIn(t, env, "git", "commit", "--allow-empty", "-m", "test commit")
}

// writeConfig writes a pre-commit configuration in the repository.
func (s *TestSetup) writeConfig(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(s.RepoPath, name), []byte(content), 0644))
}

// runnerCalls returns the argument lines logged by the fake runner.
func (s *TestSetup) runnerCalls(t *testing.T) []string {
	t.Helper()

	data, err := os.ReadFile(s.LogPath)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)

	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

// hookPath returns the path of a hook of the repository.
func (s *TestSetup) hookPath(hookType string) string {
	return filepath.Join(s.RepoPath, ".git", "hooks", hookType)
}

// resolvedBinary returns the binary path hooks are linked to.
func resolvedBinary(t *testing.T) string {
	t.Helper()
	path, err := filepath.EvalSymlinks(binaryPath)
	require.NoError(t, err)
	return path
}
