package fileops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dualpane/internal/panes"
)

// CopyOrMove transfers src into dstDir under its own base name and returns
// the resulting path. It refuses to overwrite: when the target exists the
// call fails with ErrAlreadyExists before anything is touched. A move is an
// atomic rename where the OS allows it, falling back to copy-then-delete
// across filesystem boundaries. A copy duplicates directory trees
// recursively and preserves file modes and modification times.
func CopyOrMove(src, dstDir string, move bool) (string, error) {
	dst := filepath.Join(dstDir, filepath.Base(src))
	if _, err := os.Lstat(dst); err == nil {
		return "", fmt.Errorf("%w: %s", ErrAlreadyExists, dst)
	}

	if move {
		if err := os.Rename(src, dst); err != nil {
			// Cross-device move: copy, then remove the source.
			if err := copyFileOrDir(src, dst); err != nil {
				return "", err
			}
			if err := os.RemoveAll(src); err != nil {
				return "", err
			}
		}
		return dst, nil
	}

	if err := copyFileOrDir(src, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// Delete removes the entry from disk: directory trees recursively, files
// singly. Deleting an already-missing file succeeds, so delete is
// idempotent. The parent sentinel is never deletable.
func Delete(e panes.Entry) error {
	if e.IsParent() {
		return ErrIsParent
	}
	if e.IsDir() {
		return os.RemoveAll(e.Path())
	}
	if err := os.Remove(e.Path()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Rename gives the entry a new name within its parent directory and returns
// the new path. An empty name is a user cancellation, not an error the
// caller should surface as a failure. Collisions follow OS rename semantics.
func Rename(e panes.Entry, newName string) (string, error) {
	if e.IsParent() {
		return "", ErrIsParent
	}
	if newName == "" {
		return "", ErrCancelled
	}
	newPath := filepath.Join(filepath.Dir(e.Path()), newName)
	if err := os.Rename(e.Path(), newPath); err != nil {
		return "", err
	}
	return newPath, nil
}

// MakeDir creates exactly one new directory level under parent. An empty
// name is a cancellation. Missing intermediate directories are not created,
// and an existing target fails with ErrAlreadyExists.
func MakeDir(parent, name string) (string, error) {
	if name == "" {
		return "", ErrCancelled
	}
	path := filepath.Join(parent, name)
	if err := os.Mkdir(path, 0755); err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("%w: %s", ErrAlreadyExists, path)
		}
		return "", err
	}
	return path, nil
}

// copyFileOrDir copies a file or directory from src to dst
func copyFileOrDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if srcInfo.IsDir() {
		return copyDir(src, dst)
	}
	return copyFile(src, dst, srcInfo)
}

// copyFile copies a single file, carrying over mode and timestamps
func copyFile(src, dst string, srcInfo os.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime())
}

// copyDir copies a directory recursively
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		info, err := os.Stat(srcPath)
		if err != nil {
			return err
		}
		if err := copyFile(srcPath, dstPath, info); err != nil {
			return err
		}
	}

	return os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime())
}
