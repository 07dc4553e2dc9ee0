package panes

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatParentSentinel(t *testing.T) {
	// The marker is fixed regardless of what the underlying path looks like
	for _, path := range []string{"/", "/tmp", "/no/such/path/anywhere"} {
		assert.Equal(t, "[..]", FormatEntry(NewParent(path)))
	}
}

func TestFormatFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0644))
	require.NoError(t, os.Chmod(path, 0644))

	info, err := os.Stat(path)
	require.NoError(t, err)

	want := fmt.Sprintf("-rw-r--r-- %8d %s notes.txt", info.Size(), info.ModTime().Format("2006-01-02 15:04"))
	assert.Equal(t, want, FormatEntry(NewEntry(path)))
}

func TestFormatDirectory(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "docs")
	require.NoError(t, os.Mkdir(path, 0755))
	require.NoError(t, os.Chmod(path, 0755))

	line := FormatEntry(NewEntry(path))
	assert.Contains(t, line, "<DIR>")
	assert.Contains(t, line, "docs/")
	assert.Equal(t, "drwxr-xr-x", line[:10])
}

func TestFormatStatFailureDegrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ghost.txt")

	line := FormatEntry(NewEntry(path))
	assert.Equal(t, fmt.Sprintf("%s %8s %s %s", "??????????", "?", "?", "ghost.txt"), line)
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode os.FileMode
		want string
	}{
		{0644, "-rw-r--r--"},
		{0755 | os.ModeDir, "drwxr-xr-x"},
		{0777 | os.ModeSymlink, "lrwxrwxrwx"},
		{0644 | os.ModeSetuid, "-rwSr--r--"},
		{0744 | os.ModeSetuid, "-rwsr--r--"},
		{0755 | os.ModeDir | os.ModeSticky, "drwxr-xr-t"},
		{0, "----------"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, modeString(tt.mode))
		})
	}
}
