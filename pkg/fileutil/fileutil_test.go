package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadIfExists(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is not an error", func(t *testing.T) {
		out, err := OS{}.ReadIfExists(filepath.Join(dir, "missing"))
		require.NoError(t, err)
		assert.False(t, out.Found)
		assert.Empty(t, out.Data)
	})
	t.Run("empty file is still found", func(t *testing.T) {
		path := filepath.Join(dir, "empty")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		out, err := OS{}.ReadIfExists(path)
		require.NoError(t, err)
		assert.True(t, out.Found)
		assert.Empty(t, out.Data)
	})
	t.Run("content round-trips", func(t *testing.T) {
		path := filepath.Join(dir, "changelog")
		require.NoError(t, os.WriteFile(path, []byte("OLD_CONTENT"), 0644))

		out, err := OS{}.ReadIfExists(path)
		require.NoError(t, err)
		assert.True(t, out.Found)
		assert.Equal(t, "OLD_CONTENT", out.Data)
	})
}

func TestWriteAtomic(t *testing.T) {
	t.Run("creates parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "debian", "control")
		require.NoError(t, OS{}.WriteAtomic(path, "Source: deby\n"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Source: deby\n", string(data))
	})
	t.Run("replaces existing content entirely", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "control")
		require.NoError(t, OS{}.WriteAtomic(path, "first"))
		require.NoError(t, OS{}.WriteAtomic(path, "second"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))
	})
	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, OS{}.WriteAtomic(filepath.Join(dir, "changelog"), "entry\n"))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
