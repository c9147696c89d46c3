//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Chdir(t *testing.T) {
	fs := NewFS()
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	original, err := fs.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(original) }()

	require.NoError(t, fs.Chdir(tmpDir))

	current, err := fs.Getwd()
	require.NoError(t, err)
	assert.Equal(t, tmpDir, current)

	err = fs.Chdir(filepath.Join(tmpDir, "missing"))
	assert.ErrorIs(t, err, ErrFile)
	assert.Contains(t, err.Error(), "Changing directory to")
}
