package panes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPane(t *testing.T, fileCount int) (*Pane, string) {
	t.Helper()
	tempDir := t.TempDir()
	for i := 0; i < fileCount; i++ {
		name := filepath.Join(tempDir, string(rune('a'+i))+".txt")
		require.NoError(t, os.WriteFile(name, []byte("x"), 0644))
	}

	p := NewPane(tempDir)
	require.NoError(t, p.Refresh(true))
	return p, p.Dir
}

func TestMoveDownClampsAtLastEntry(t *testing.T) {
	p, _ := newTestPane(t, 2) // sentinel + 2 files

	p.Cursor = len(p.Entries) - 1
	p.MoveDown()
	assert.Equal(t, len(p.Entries)-1, p.Cursor, "down at the last index must not move the cursor")
}

func TestMoveUpClampsAtTop(t *testing.T) {
	p, _ := newTestPane(t, 2)

	p.MoveUp()
	assert.Equal(t, 0, p.Cursor)
}

func TestRefreshClampsCursorAfterShrink(t *testing.T) {
	p, dir := newTestPane(t, 3)

	p.Cursor = len(p.Entries) - 1

	// Remove two files behind the pane's back
	require.NoError(t, os.Remove(filepath.Join(dir, "b.txt")))
	require.NoError(t, os.Remove(filepath.Join(dir, "c.txt")))

	require.NoError(t, p.Refresh(true))
	assert.Equal(t, len(p.Entries)-1, p.Cursor)
	assert.Less(t, p.Cursor, len(p.Entries))
}

func TestSelectedUnderCursor(t *testing.T) {
	p, _ := newTestPane(t, 2)

	assert.True(t, p.Selected().IsParent())

	p.MoveDown()
	assert.Equal(t, "a.txt", p.Selected().Name())
}

func TestSelectedBeforeRefreshIsInert(t *testing.T) {
	p := NewPane(t.TempDir())
	selected := p.Selected()
	assert.True(t, selected.IsParent())
}

func TestRefreshCanonicalizesDir(t *testing.T) {
	tempDir := t.TempDir()
	real := filepath.Join(tempDir, "real")
	require.NoError(t, os.Mkdir(real, 0755))
	link := filepath.Join(tempDir, "link")
	require.NoError(t, os.Symlink(real, link))

	p := NewPane(link)
	require.NoError(t, p.Refresh(true))

	want, err := filepath.EvalSymlinks(real)
	require.NoError(t, err)
	assert.Equal(t, want, p.Dir)
}

func TestRefreshFailureKeepsEntries(t *testing.T) {
	p, dir := newTestPane(t, 1)
	before := len(p.Entries)

	p.Dir = filepath.Join(dir, "does-not-exist")
	err := p.Refresh(true)
	assert.Error(t, err)
	assert.Len(t, p.Entries, before, "a failed refresh should not blank the view")
}

func TestChangeDirResetsCursor(t *testing.T) {
	p, dir := newTestPane(t, 2)
	p.Cursor = 2

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))

	p.ChangeDir(sub)
	assert.Equal(t, 0, p.Cursor)
	assert.Equal(t, sub, p.Dir)
}
