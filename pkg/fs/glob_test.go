//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Glob(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()

	for _, name := range []string{".pre-commit-config-b.yaml", ".pre-commit-config.yaml", "other.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("repos: []\n"), 0644))
	}

	matches, err := fs.Glob(filepath.Join(tmpDir, ".pre-commit-config*.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, ".pre-commit-config-b.yaml"),
		filepath.Join(tmpDir, ".pre-commit-config.yaml"),
	}, matches)

	// Malformed pattern
	_, err = fs.Glob("[")
	assert.ErrorIs(t, err, ErrFile)
}
