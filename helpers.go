package main

import (
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skratchdot/open-golang/open"

	"dualpane/internal/logger"
)

// openExternal hands a file to the OS default application. Best-effort: a
// failure only produces a status message, never an aborted loop.
func (m *model) openExternal(path string) tea.Cmd {
	return func() tea.Msg {
		if err := open.Run(path); err != nil {
			logger.Warn("open %s: %v", path, err)
			return fileOpenResultMsg{message: fmt.Sprintf("could not open %s: %v", filepath.Base(path), err)}
		}
		return fileOpenResultMsg{message: "opened: " + filepath.Base(path)}
	}
}

// copyPathToClipboard puts the absolute path of the selection on the system
// clipboard.
func (m *model) copyPathToClipboard(path string) {
	if err := clipboard.WriteAll(path); err != nil {
		m.setStatus(fmt.Sprintf("failed to copy path: %v", err))
		return
	}
	m.setStatus("copied path: " + path)
}
