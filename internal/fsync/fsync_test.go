package fsync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	_, err = f.WriteString("1;a.m2\n")
	require.NoError(t, err)
	require.NoError(t, File(f, false))
	require.NoError(t, File(f, true))
}

func TestFileNil(t *testing.T) {
	require.ErrorIs(t, File(nil, false), os.ErrInvalid)
}
