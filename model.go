package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"dualpane/internal/config"
	"dualpane/internal/fileops"
	"dualpane/internal/logger"
	"dualpane/internal/panes"
)

// fileOpenResultMsg reports the outcome of launching the external opener
type fileOpenResultMsg struct {
	message string
}

// Terminal dimension constants
const (
	minTerminalWidth  = 40
	minTerminalHeight = 8
)

// Application behavior constants
const (
	statusDuration = 4 * time.Second // How long transient status messages stay up
)

type mode int

const (
	modeBrowse mode = iota
	modeRename
	modeMkdir
	modeJump
	modeHelp
)

const defaultStatus = "tab: switch | enter: open | F5: copy | F6: move | F7: mkdir | F2: rename | F8: delete | q: quit"

type model struct {
	mode         mode
	panes        [2]*panes.Pane
	active       int // 0 = left, 1 = right
	showHidden   bool
	textInput    textinput.Model // For rename, mkdir and jump prompts
	width        int
	height       int
	statusMsg    string
	statusExpiry time.Time
	config       *config.Config
}

func initialModel(cfg *config.Config) *model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50

	m := &model{
		mode:       modeBrowse,
		panes:      [2]*panes.Pane{panes.NewPane(cfg.LeftDir), panes.NewPane(cfg.RightDir)},
		active:     0,
		showHidden: cfg.ShowHidden,
		textInput:  ti,
		config:     cfg,
	}

	m.refreshPanes()
	return m
}

// activePane returns the pane with keyboard focus.
func (m *model) activePane() *panes.Pane {
	return m.panes[m.active]
}

// otherPane returns the pane that copy and move target.
func (m *model) otherPane() *panes.Pane {
	return m.panes[1-m.active]
}

// refreshPanes re-lists both directories so the entries and clamped cursors
// always reflect current disk state. Listing failures become status text,
// never a dead loop.
func (m *model) refreshPanes() {
	for _, p := range m.panes {
		if err := p.Refresh(m.showHidden); err != nil {
			logger.Warn("refresh %s: %v", p.Dir, err)
			m.setStatus(err.Error())
		}
	}
}

func (m *model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(statusDuration)
}

// reportOpError converts a file operation error into status text. This is
// the single boundary where operation failures are absorbed; nothing past
// it terminates the event loop.
func (m *model) reportOpError(op string, err error) {
	switch {
	case errors.Is(err, fileops.ErrCancelled):
		m.setStatus(op + " cancelled")
	case errors.Is(err, fileops.ErrIsParent):
		m.setStatus("cannot " + op + " the parent entry")
	default:
		logger.Error("%s failed: %v", op, err)
		m.setStatus(fmt.Sprintf("%s failed: %v", op, err))
	}
}

// saveConfig persists the pane directories and hidden-file setting on quit.
func (m *model) saveConfig() {
	m.config.LeftDir = m.panes[0].Dir
	m.config.RightDir = m.panes[1].Dir
	m.config.ShowHidden = m.showHidden
	if err := config.Save(m.config); err != nil {
		logger.Warn("Failed to save config: %v", err)
	}
}

// Helper methods for safe dimensions
func (m *model) getSafeWidth() int {
	if m.width < minTerminalWidth {
		return minTerminalWidth
	}
	return m.width
}

func (m *model) getSafeHeight() int {
	if m.height < minTerminalHeight {
		return minTerminalHeight
	}
	return m.height
}
