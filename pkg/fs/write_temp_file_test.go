//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_WriteTempFile(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()

	first, err := fs.WriteTempFile(tmpDir, ".pre-commit-config-", ".yaml", []byte("repos: []\n"))
	require.NoError(t, err)
	second, err := fs.WriteTempFile(tmpDir, ".pre-commit-config-", ".yaml", []byte("fail_fast: true\n"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, tmpDir, filepath.Dir(first))
	assert.True(t, strings.HasPrefix(filepath.Base(first), ".pre-commit-config-"))
	assert.True(t, strings.HasSuffix(first, ".yaml"))

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "repos: []\n", string(data))
}

func TestFS_WriteTempFile_MissingDir(t *testing.T) {
	fs := NewFS()

	_, err := fs.WriteTempFile(filepath.Join(t.TempDir(), "missing"), "x-", ".yaml", nil)
	assert.ErrorIs(t, err, ErrFile)
}
