package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/portrait/internal/ui"
	"github.com/llehouerou/portrait/internal/ui/layout"
	"github.com/llehouerou/portrait/internal/ui/render"
	"github.com/llehouerou/portrait/internal/ui/styles"
)

// View renders the application UI. The header rows replace the first
// rows of the content view, which hold the spacer under them.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	area := m.areaHeight()
	head := m.Header.Lines()
	body := m.Content.Lines()

	lines := make([]string, 0, m.Height)
	for y := range area {
		switch {
		case y < len(head):
			lines = append(lines, head[y])
		case y < len(body):
			lines = append(lines, body[y])
		default:
			lines = append(lines, "")
		}
	}

	lines = append(lines, m.renderStatusBar(), m.renderHelp())
	return strings.Join(lines, "\n")
}

// areaHeight returns the rows shared by the header and the content.
func (m Model) areaHeight() int {
	return layout.ContentHeight(m.Height, layout.ContentOpts{
		StatusBarHeight: ui.StatusBarHeight,
		HelpHeight:      m.helpHeight(),
	})
}

func (m Model) helpHeight() int {
	if !m.ShowFullHelp {
		return ui.HelpHeight
	}
	return lipgloss.Height(m.Help.View(m.HelpKeys))
}

func (m Model) renderHelp() string {
	return m.Help.View(m.HelpKeys)
}

// renderStatusBar shows the error, the current notice or the subject
// status on the left and the position on the right.
func (m Model) renderStatusBar() string {
	t := styles.T()
	s := t.S()
	bar := s.StatusBar

	left := m.Notice
	if left == "" {
		subj := m.CurrentSubject()
		left = subj.Title() + " · " + subj.Status(m.now())
	}
	if m.ErrorMsg != "" {
		left = m.ErrorMsg
		bar = bar.Foreground(t.Error)
	}

	right := fmt.Sprintf("%d/%d", m.Current+1, len(m.Subjects))
	if g := m.Header.Gallery(); m.Header.IsExpanded() && g.Len() > 0 {
		right = fmt.Sprintf("photo %d/%d  %s", g.Index()+1, g.Len(), right)
	}

	room := m.Width - ansi.StringWidth(right) - 3
	left = ansi.Truncate(left, max(room, 0), "…")

	line := " " + render.Row(left, right, m.Width-2) + " "
	return bar.Width(m.Width).Render(ansi.Truncate(line, m.Width, ""))
}
