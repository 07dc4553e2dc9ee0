package main

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"dualpane/internal/fileops"
)

func (m *model) Init() tea.Cmd {
	return tea.SetWindowTitle("dualpane")
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Clear expired status messages
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case fileOpenResultMsg:
		m.setStatus(msg.message)
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeBrowse:
			return m.updateBrowse(msg)

		case modeRename:
			switch msg.String() {
			case "ctrl+c", "esc":
				m.leavePrompt()
				m.setStatus("rename cancelled")
				return m, nil
			case "enter":
				newName := m.textInput.Value()
				m.leavePrompt()
				selected := m.activePane().Selected()
				if newPath, err := fileops.Rename(selected, newName); err != nil {
					m.reportOpError("rename", err)
				} else {
					m.setStatus("renamed to: " + filepath.Base(newPath))
				}
				m.refreshPanes()
				return m, nil
			default:
				m.textInput, cmd = m.textInput.Update(msg)
				return m, cmd
			}

		case modeMkdir:
			switch msg.String() {
			case "ctrl+c", "esc":
				m.leavePrompt()
				m.setStatus("mkdir cancelled")
				return m, nil
			case "enter":
				name := m.textInput.Value()
				m.leavePrompt()
				if path, err := fileops.MakeDir(m.activePane().Dir, name); err != nil {
					m.reportOpError("mkdir", err)
				} else {
					m.setStatus("created directory: " + filepath.Base(path))
				}
				m.refreshPanes()
				return m, nil
			default:
				m.textInput, cmd = m.textInput.Update(msg)
				return m, cmd
			}

		case modeJump:
			switch msg.String() {
			case "ctrl+c", "esc", "enter":
				m.leavePrompt()
				return m, nil
			default:
				m.textInput, cmd = m.textInput.Update(msg)
				m.jumpToMatch(m.textInput.Value())
				return m, cmd
			}

		case modeHelp:
			switch msg.String() {
			case "ctrl+c", "esc", "q", "?":
				m.mode = modeBrowse
			}
			return m, nil
		}
	}

	return m, nil
}

// updateBrowse is the transition table of the browsing state. Every mutating
// action is followed by an unconditional refresh of both panes, and every
// operation error ends up in the status line instead of ending the loop.
func (m *model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pane := m.activePane()
	selected := pane.Selected()

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.saveConfig()
		return m, tea.Quit

	case "tab":
		m.active = 1 - m.active

	case "up", "k":
		pane.MoveUp()

	case "down", "j":
		pane.MoveDown()

	case "enter":
		if selected.IsDir() {
			pane.ChangeDir(selected.Path())
			m.refreshPanes()
			return m, nil
		}
		m.setStatus("opening: " + selected.Name())
		return m, m.openExternal(selected.Path())

	case "f5", "5":
		if target, err := fileops.CopyOrMove(selected.Path(), m.otherPane().Dir, false); err != nil {
			m.reportOpError("copy", err)
		} else {
			m.setStatus("copied: " + filepath.Base(target))
		}
		m.refreshPanes()

	case "f6", "6":
		if target, err := fileops.CopyOrMove(selected.Path(), m.otherPane().Dir, true); err != nil {
			m.reportOpError("move", err)
		} else {
			m.setStatus("moved: " + filepath.Base(target))
		}
		m.refreshPanes()

	case "f8", "8", "delete":
		if err := fileops.Delete(selected); err != nil {
			m.reportOpError("delete", err)
		} else {
			m.setStatus("deleted: " + selected.Name())
		}
		m.refreshPanes()

	case "f7", "7":
		m.enterPrompt(modeMkdir, "", "New directory name...")

	case "f2", "2":
		if selected.IsParent() {
			m.setStatus("nothing to rename")
			return m, nil
		}
		m.enterPrompt(modeRename, selected.Name(), "New name...")

	case "/":
		m.enterPrompt(modeJump, "", "Jump to...")

	case "r":
		m.refreshPanes()
		m.setStatus("refreshed")

	case ".":
		m.showHidden = !m.showHidden
		m.refreshPanes()
		if m.showHidden {
			m.setStatus("showing hidden files")
		} else {
			m.setStatus("hiding hidden files")
		}

	case "y":
		m.copyPathToClipboard(selected.Path())

	case "?":
		m.mode = modeHelp
	}

	return m, nil
}

// enterPrompt switches into a text-input mode with the prompt pre-filled.
func (m *model) enterPrompt(target mode, value, placeholder string) {
	m.mode = target
	m.textInput.SetValue(value)
	m.textInput.Placeholder = placeholder
	m.textInput.CursorEnd()
	m.textInput.Focus()
}

func (m *model) leavePrompt() {
	m.mode = modeBrowse
	m.textInput.SetValue("")
	m.textInput.Blur()
}

// jumpToMatch moves the active cursor to the best fuzzy match for query,
// skipping the parent sentinel at index 0.
func (m *model) jumpToMatch(query string) {
	if query == "" {
		return
	}
	pane := m.activePane()
	if len(pane.Entries) < 2 {
		return
	}

	names := make([]string, len(pane.Entries)-1)
	for i, e := range pane.Entries[1:] {
		names[i] = e.Name()
	}

	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		m.setStatus(fmt.Sprintf("no match for %q", query))
		return
	}
	pane.Cursor = matches[0].Index + 1
	m.setStatus(fmt.Sprintf("%d matches", len(matches)))
}
