package panes

import (
	"fmt"
	"os"
)

// ParentMarker is the display text for the parent sentinel.
const ParentMarker = "[..]"

const (
	unknownMode = "??????????"
	timeLayout  = "2006-01-02 15:04"
)

// FormatEntry renders one entry as a fixed-column display line:
// a 10-character mode string, an 8-character right-aligned size (<DIR> for
// directories), the modification time, and the name with a trailing slash
// for directories. The parent sentinel renders as the literal marker and
// nothing else. Stat failures degrade to placeholders; FormatEntry never
// fails.
func FormatEntry(e Entry) string {
	if e.IsParent() {
		return ParentMarker
	}

	name := e.Name()
	if e.IsDir() {
		name += "/"
	}

	info, err := os.Stat(e.Path())
	if err != nil {
		return fmt.Sprintf("%s %8s %s %s", unknownMode, "?", "?", name)
	}

	size := fmt.Sprintf("%d", info.Size())
	if info.IsDir() {
		size = "<DIR>"
	}
	mtime := info.ModTime().Format(timeLayout)

	return fmt.Sprintf("%s %8s %s %s", modeString(info.Mode()), size, mtime, name)
}

// modeString renders a FileMode in the 10-character ls -l form.
func modeString(mode os.FileMode) string {
	var b [10]byte

	switch {
	case mode.IsDir():
		b[0] = 'd'
	case mode&os.ModeSymlink != 0:
		b[0] = 'l'
	case mode&os.ModeNamedPipe != 0:
		b[0] = 'p'
	case mode&os.ModeSocket != 0:
		b[0] = 's'
	case mode&os.ModeCharDevice != 0:
		b[0] = 'c'
	case mode&os.ModeDevice != 0:
		b[0] = 'b'
	default:
		b[0] = '-'
	}

	const rwx = "rwxrwxrwx"
	perm := mode.Perm()
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			b[i+1] = rwx[i]
		} else {
			b[i+1] = '-'
		}
	}

	if mode&os.ModeSetuid != 0 {
		b[3] = setBit(b[3], 's')
	}
	if mode&os.ModeSetgid != 0 {
		b[6] = setBit(b[6], 's')
	}
	if mode&os.ModeSticky != 0 {
		b[9] = setBit(b[9], 't')
	}

	return string(b[:])
}

func setBit(cur byte, set byte) byte {
	if cur == '-' {
		return set - 'a' + 'A' // 'S' or 'T'
	}
	return set
}
