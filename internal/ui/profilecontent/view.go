package profilecontent

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/portrait/internal/icons"
	"github.com/llehouerou/portrait/internal/profile"
	"github.com/llehouerou/portrait/internal/ui/render"
	"github.com/llehouerou/portrait/internal/ui/styles"
)

const indent = 2

// render builds every content line: spacer, sections, tabs, tab items and
// trailing padding.
func (p *Pane) render() []string {
	w := p.Width()
	s := styles.T().S()
	blank := strings.Repeat(" ", max(w, 0))

	lines := make([]string, 0, p.spacer+32)
	for range p.spacer {
		lines = append(lines, blank)
	}

	line := func(st lipgloss.Style, text string) {
		lines = append(lines, st.Render(render.TruncateAndPad(strings.Repeat(" ", indent)+text, w)))
	}

	for _, sec := range p.subject.Sections() {
		lines = append(lines, blank)
		lines = append(lines, heading(sec.Title, w))
		for _, row := range sec.Rows {
			line(s.Base, render.Sanitize(row.Value))
			line(s.Label, row.Label)
		}
	}

	p.tabsLine = -1
	p.tabCols = nil
	if len(p.tabs) > 0 {
		lines = append(lines, blank)
		p.tabsLine = len(lines)
		lines = append(lines, p.renderTabs(w))
		lines = append(lines, s.Subtle.Render(render.Separator(w)))

		items := p.subject.TabItems(p.Tab())
		if len(items) == 0 {
			line(s.Muted, "No "+strings.ToLower(p.Tab().String())+" yet")
		}
		kind := itemKind(p.Tab())
		for _, it := range items {
			line(s.Base, icons.FormatItem(kind, render.Sanitize(it)))
		}
	}

	// Enough rows below the body to scroll the header fully out of the way.
	for len(lines) < p.vp.Height+p.minScroll {
		lines = append(lines, blank)
	}
	return lines
}

// heading renders a section title with the primary gradient.
func heading(title string, w int) string {
	t := styles.T()
	title = render.Truncate(title, max(w-indent, 0))
	pad := max(w-indent-runewidth.StringWidth(title), 0)
	return strings.Repeat(" ", indent) + styles.ApplyBoldGradient(title, t.Primary, t.Secondary) + strings.Repeat(" ", pad)
}

// renderTabs lays out the tab labels and records their columns for
// hit-testing.
func (p *Pane) renderTabs(w int) string {
	s := styles.T().S()
	var b strings.Builder
	col := indent
	b.WriteString(strings.Repeat(" ", indent))
	for i, tab := range p.tabs {
		label := " " + tab.String() + " "
		p.tabCols = append(p.tabCols, col)
		if i == p.tab {
			b.WriteString(s.TabActive.Render(label))
		} else {
			b.WriteString(s.Tab.Render(label))
		}
		col += runewidth.StringWidth(label)
		b.WriteString(" ")
		col++
	}
	p.tabCols = append(p.tabCols, col)
	if col < w {
		b.WriteString(strings.Repeat(" ", w-col))
	}
	return b.String()
}

// tabAt returns the tab index under column x of the tabs row, or -1.
func (p *Pane) tabAt(x int) int {
	for i := 0; i+1 < len(p.tabCols); i++ {
		if x >= p.tabCols[i] && x < p.tabCols[i+1]-1 {
			return i
		}
	}
	return -1
}

func itemKind(t profile.Tab) icons.Kind {
	switch t {
	case profile.TabFiles:
		return icons.KindFile
	case profile.TabLinks:
		return icons.KindLink
	case profile.TabMembers:
		return icons.KindMember
	default:
		return icons.KindMedia
	}
}
