package panes

import (
	"os"
	"path/filepath"
)

// Entry is one row of a pane listing: either a regular filesystem entry or
// the synthetic parent entry that sits at index 0 of every listing. The two
// kinds are distinguished by an explicit tag, never by comparing paths.
type Entry struct {
	path   string
	parent bool
}

// NewEntry returns a regular entry for the given absolute path.
func NewEntry(path string) Entry {
	return Entry{path: path}
}

// NewParent returns the parent sentinel pointing at the given directory.
func NewParent(path string) Entry {
	return Entry{path: path, parent: true}
}

// Path returns the underlying absolute path.
func (e Entry) Path() string {
	return e.path
}

// Name returns the base name of the entry.
func (e Entry) Name() string {
	return filepath.Base(e.path)
}

// IsParent reports whether this is the synthetic parent entry.
func (e Entry) IsParent() bool {
	return e.parent
}

// IsDir reports whether the entry refers to a directory, following symlinks.
// The parent sentinel is always a directory. Attributes are looked up on
// every call; nothing is cached beyond the listing itself.
func (e Entry) IsDir() bool {
	if e.parent {
		return true
	}
	info, err := os.Stat(e.path)
	return err == nil && info.IsDir()
}
