package restyutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "transcripts")

	out, err := NewFilesystemOutput(dir)
	require.NoError(t, err)
	out.Write("1", "hello")

	data, err := os.ReadFile(filepath.Join(dir, "1"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))

	// a fresh output starts from a clean directory
	_, err = NewFilesystemOutput(dir)
	require.NoError(t, err)
	_, err = os.ReadFile(filepath.Join(dir, "1"))
	require.True(t, os.IsNotExist(err))
}
