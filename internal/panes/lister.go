package panes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Canonical resolves dir to an absolute path with symlinks evaluated, so the
// same directory always displays under one spelling across refreshes.
func Canonical(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", dir, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// Path may have vanished between keystrokes; keep the absolute form.
		return abs, nil
	}
	return resolved, nil
}

// List reads dir and returns its entries with the parent sentinel at index 0.
// The sentinel points at dir's parent, or at dir itself when dir is the
// filesystem root. Remaining entries are sorted directories-first, then
// case-insensitive by name. When showHidden is false, dot-files are skipped.
func List(dir string, showHidden bool) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dir, err)
	}

	type listed struct {
		entry Entry
		isDir bool
		lower string
	}

	items := make([]listed, 0, len(dirEntries))
	for _, de := range dirEntries {
		if !showHidden && strings.HasPrefix(de.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, de.Name())
		isDir := de.IsDir()
		if !isDir && de.Type()&os.ModeSymlink != 0 {
			// Symlinked directories sort with the directories.
			if info, err := os.Stat(path); err == nil {
				isDir = info.IsDir()
			}
		}
		items = append(items, listed{
			entry: NewEntry(path),
			isDir: isDir,
			lower: strings.ToLower(de.Name()),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].isDir != items[j].isDir {
			return items[i].isDir
		}
		return items[i].lower < items[j].lower
	})

	entries := make([]Entry, 0, len(items)+1)
	entries = append(entries, NewParent(filepath.Dir(dir)))
	for _, it := range items {
		entries = append(entries, it.entry)
	}
	return entries, nil
}
