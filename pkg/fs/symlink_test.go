//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Symlink(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "target")
	link := filepath.Join(tmpDir, "link")
	require.NoError(t, os.WriteFile(target, []byte("target content"), 0755))

	require.NoError(t, fs.Symlink(target, link))

	dest, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, dest)

	// Reading through the link returns the target content
	data, err := fs.ReadFile(link)
	require.NoError(t, err)
	assert.Equal(t, "target content", string(data))

	// Linking over an existing path fails
	err = fs.Symlink(target, link)
	assert.ErrorIs(t, err, ErrFile)
	assert.Contains(t, err.Error(), "Symlinking file")
}
