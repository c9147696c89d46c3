package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// SetupTestRepo creates a git repository with an empty initial commit and a
// hooks directory, and makes it the working directory for the rest of the
// test. It returns the repository root.
func SetupTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)

	for _, args := range [][]string{
		{"init"},
		{"config", "user.name", "Test User"},
		{"config", "user.email", "test@example.com"},
		{"config", "commit.gpgsign", "false"},
		{"commit", "--allow-empty", "-m", "Initial commit"},
	} {
		if output, err := exec.Command("git", args...).CombinedOutput(); err != nil {
			t.Fatalf("Failed to run git %v: %v\n%s", args, err, output)
		}
	}

	// Templates without hooks leave the directory out
	if err := os.MkdirAll(filepath.Join(dir, ".git", "hooks"), 0755); err != nil {
		t.Fatalf("Failed to create hooks directory: %v", err)
	}

	return dir
}
