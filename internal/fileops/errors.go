// Package fileops implements the filesystem mutations behind the file
// manager: copy, move, delete, rename and mkdir. Every operation takes
// explicit arguments, reads no global state, and reports failures through a
// small error vocabulary that the navigation controller matches with
// errors.Is to build status messages.
package fileops

import "errors"

var (
	// ErrAlreadyExists means a copy, move or mkdir target already exists.
	// The operation aborted before touching the filesystem.
	ErrAlreadyExists = errors.New("destination already exists")

	// ErrIsParent means the operation was asked to act on the synthetic
	// parent entry, which is never deletable or renamable.
	ErrIsParent = errors.New("cannot operate on parent entry")

	// ErrCancelled means the user submitted an empty name in a prompt.
	// Callers treat it as a no-op, not a failure.
	ErrCancelled = errors.New("cancelled")
)
