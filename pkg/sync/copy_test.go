package sync

import (
	"os"
	"testing"

	"github.com/dotskills/dotskills/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyTree(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/a/nested/deep", 0755))
	require.NoError(t, fs.WriteFile("/a/top.txt", []byte("top"), 0644))
	require.NoError(t, fs.WriteFile("/a/nested/mid.txt", []byte("mid"), 0644))
	require.NoError(t, fs.WriteFile("/a/nested/deep/leaf.txt", []byte("leaf"), 0600))

	n, err := copyTree(fs, "/a", "/b")
	require.NoError(t, err)
	assert.Equal(t, int64(len("top")+len("mid")+len("leaf")), n)

	data, err := fs.ReadFile("/b/nested/deep/leaf.txt")
	require.NoError(t, err)
	assert.Equal(t, "leaf", string(data))

	info, err := fs.Stat("/b/nested/deep/leaf.txt")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestCopyTreeMissingSource(t *testing.T) {
	fs := filesystem.NewMemory()

	_, err := copyTree(fs, "/nope", "/b")
	require.Error(t, err)
}

func TestTreesEqual(t *testing.T) {
	build := func(t *testing.T) filesystem.FS {
		fs := filesystem.NewMemory()
		require.NoError(t, fs.WriteFile("/x/f.txt", []byte("same"), 0644))
		require.NoError(t, fs.WriteFile("/x/sub/g.txt", []byte("same too"), 0644))
		require.NoError(t, fs.WriteFile("/y/f.txt", []byte("same"), 0644))
		require.NoError(t, fs.WriteFile("/y/sub/g.txt", []byte("same too"), 0644))
		return fs
	}

	t.Run("identical trees", func(t *testing.T) {
		fs := build(t)
		equal, err := treesEqual(fs, "/x", "/y")
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("content differs", func(t *testing.T) {
		fs := build(t)
		require.NoError(t, fs.WriteFile("/y/sub/g.txt", []byte("different"), 0644))

		equal, err := treesEqual(fs, "/x", "/y")
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("extra file differs", func(t *testing.T) {
		fs := build(t)
		require.NoError(t, fs.WriteFile("/y/extra.txt", []byte("x"), 0644))

		equal, err := treesEqual(fs, "/x", "/y")
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("file versus directory", func(t *testing.T) {
		fs := filesystem.NewMemory()
		require.NoError(t, fs.WriteFile("/x/entry", []byte("file"), 0644))
		require.NoError(t, fs.MkdirAll("/y/entry", 0755))

		equal, err := treesEqual(fs, "/x", "/y")
		require.NoError(t, err)
		assert.False(t, equal)
	})
}
