package panes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSentinelFirst(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "file.txt"), []byte("x"), 0644))

	entries, err := List(tempDir, true)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	assert.True(t, entries[0].IsParent())
	assert.Equal(t, filepath.Dir(tempDir), entries[0].Path())
}

func TestListOrdering(t *testing.T) {
	tempDir := t.TempDir()
	// Names chosen so a pure lexicographic sort would interleave them
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "zebra"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "Apple"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "banana.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "Cherry.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "aardvark.txt"), []byte("x"), 0644))

	entries, err := List(tempDir, true)
	require.NoError(t, err)

	names := make([]string, 0, len(entries)-1)
	for _, e := range entries[1:] {
		names = append(names, e.Name())
	}

	// Directories first, case-insensitive within each class
	assert.Equal(t, []string{"Apple", "zebra", "aardvark.txt", "banana.txt", "Cherry.txt"}, names)
}

func TestListHiddenFilter(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".hidden"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "visible.txt"), []byte("x"), 0644))

	entries, err := List(tempDir, false)
	require.NoError(t, err)
	require.Len(t, entries, 2) // sentinel + visible.txt
	assert.Equal(t, "visible.txt", entries[1].Name())

	entries, err = List(tempDir, true)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestListUnreadableDirectory(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "does-not-exist"), true)
	assert.Error(t, err)
}

func TestListSentinelAtRoot(t *testing.T) {
	entries, err := List("/", true)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	// At the filesystem root the parent points back at the root itself
	assert.True(t, entries[0].IsParent())
	assert.Equal(t, "/", entries[0].Path())
}

func TestCanonicalResolvesSymlinks(t *testing.T) {
	tempDir := t.TempDir()
	real := filepath.Join(tempDir, "real")
	require.NoError(t, os.Mkdir(real, 0755))
	link := filepath.Join(tempDir, "link")
	require.NoError(t, os.Symlink(real, link))

	got, err := Canonical(link)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(real)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCanonicalMissingPathKeepsAbsoluteForm(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")
	got, err := Canonical(missing)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}
