package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"dualpane/internal/panes"
)

var (
	activeTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("57"))

	inactiveTitleStyle = lipgloss.NewStyle().
				Faint(true).
				Foreground(lipgloss.Color("250"))

	selectedRowStyle = lipgloss.NewStyle().
				Reverse(true)

	entryRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("240"))

	promptLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2)
)

func (m *model) View() string {
	width := m.getSafeWidth()
	height := m.getSafeHeight()

	if m.mode == modeHelp {
		return m.renderHelpView()
	}

	mid := width / 2
	visibleRows := height - 2 // one row for the pane title, one for status

	left := m.renderPane(m.panes[0], mid, visibleRows, m.active == 0)
	right := m.renderPane(m.panes[1], width-mid, visibleRows, m.active == 1)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return body + "\n" + m.renderBottomRow(width)
}

// renderPane draws one directory view into a width-bounded column: a title
// row with the pane's path, then a scrolled window of formatted entries with
// the cursor row highlighted when the pane is active.
func (m *model) renderPane(p *panes.Pane, width, visibleRows int, active bool) string {
	titleStyle := inactiveTitleStyle
	if active {
		titleStyle = activeTitleStyle
	}
	title := titleStyle.Render(padToWidth(" "+p.Dir+" ", width))

	if visibleRows < 1 {
		visibleRows = 1
	}
	start := 0
	if p.Cursor >= visibleRows {
		start = p.Cursor - visibleRows + 1
	}
	end := start + visibleRows
	if end > len(p.Entries) {
		end = len(p.Entries)
	}

	rows := make([]string, 0, visibleRows+1)
	rows = append(rows, title)
	for i := start; i < end; i++ {
		line := padToWidth(panes.FormatEntry(p.Entries[i]), width)
		if active && i == p.Cursor {
			line = selectedRowStyle.Render(line)
		} else {
			line = entryRowStyle.Render(line)
		}
		rows = append(rows, line)
	}
	for len(rows) < visibleRows+1 {
		rows = append(rows, padToWidth("", width))
	}

	return strings.Join(rows, "\n")
}

// renderBottomRow draws the status line, replaced by the text prompt while a
// rename, mkdir or jump dialog is open.
func (m *model) renderBottomRow(width int) string {
	switch m.mode {
	case modeRename:
		return padToWidth(promptLabelStyle.Render("rename: ")+m.textInput.View(), width)
	case modeMkdir:
		return padToWidth(promptLabelStyle.Render("mkdir: ")+m.textInput.View(), width)
	case modeJump:
		return padToWidth(promptLabelStyle.Render("jump: ")+m.textInput.View(), width)
	}

	statusText := m.statusMsg
	if statusText == "" {
		statusText = defaultStatus
	}

	rightSide := m.selectionSummary()
	padding := width - lipgloss.Width(statusText) - lipgloss.Width(rightSide)
	if padding < 1 {
		padding = 1
	}

	return statusStyle.Render(padToWidth(statusText+strings.Repeat(" ", padding)+rightSide, width))
}

// selectionSummary describes the active pane for the right edge of the
// status bar: cursor position, entry count and a humanized size for files.
func (m *model) selectionSummary() string {
	pane := m.activePane()
	if len(pane.Entries) == 0 {
		return ""
	}

	summary := fmt.Sprintf("%d/%d", pane.Cursor+1, len(pane.Entries))

	selected := pane.Selected()
	if !selected.IsParent() && !selected.IsDir() {
		if info, err := os.Stat(selected.Path()); err == nil {
			summary += " | " + humanize.Bytes(uint64(info.Size()))
		}
	}
	return summary
}

func (m *model) renderHelpView() string {
	lines := []string{
		"dualpane keys",
		"",
		"  tab          switch pane",
		"  up/down j/k  move cursor",
		"  enter        open directory / file",
		"  F5 / 5       copy to other pane",
		"  F6 / 6       move to other pane",
		"  F7 / 7       create directory",
		"  F2 / 2       rename",
		"  F8 / 8       delete",
		"  /            jump to entry",
		"  .            toggle hidden files",
		"  y            copy path to clipboard",
		"  r            refresh",
		"  q            quit",
		"",
		"press esc or ? to close",
	}

	help := helpStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.getSafeWidth(), m.getSafeHeight(), lipgloss.Center, lipgloss.Center, help)
}

// padToWidth truncates or pads a line to exactly the given display width.
func padToWidth(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		runes := []rune(s)
		out := ""
		for _, r := range runes {
			if lipgloss.Width(out+string(r)) > width {
				break
			}
			out += string(r)
		}
		return out
	}
	return s + strings.Repeat(" ", width-w)
}
