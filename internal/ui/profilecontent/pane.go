// Package profilecontent is the scrollable body under the profile header.
// It hosts the header's spacer rows and reports its scroll offset.
package profilecontent

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/llehouerou/portrait/internal/profile"
	"github.com/llehouerou/portrait/internal/ui"
)

// Pane wraps a viewport whose first rows are a spacer sized to the header.
// It must be used through a pointer: the header writes the spacer height
// into it while the app holds it.
type Pane struct {
	ui.Base

	vp      viewport.Model
	subject profile.Subject
	tabs    []profile.Tab
	tab     int

	spacer    int
	minScroll int

	lines    []string
	tabsLine int   // content line of the tabs row, -1 if none
	tabCols  []int // start column of each tab label, plus the end

	intercepted bool
	press       *press

	onScroll func(offset int)
	reported int
}

type press struct {
	y, lastY int
}

// Option configures a Pane.
type Option func(*Pane)

// WithScrollHandler sets the function called with the new offset every
// time the content scrolls.
func WithScrollHandler(fn func(offset int)) Option {
	return func(p *Pane) { p.onScroll = fn }
}

// WithMinScroll guarantees the content can scroll at least n rows, so the
// header can always reach its minimized size.
func WithMinScroll(n int) Option {
	return func(p *Pane) { p.minScroll = max(n, 0) }
}

// New returns an empty pane.
func New(opts ...Option) *Pane {
	p := &Pane{vp: viewport.New(0, 0), tabsLine: -1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetScrollHandler replaces the scroll handler.
func (p *Pane) SetScrollHandler(fn func(offset int)) {
	p.onScroll = fn
}

// SetSize resizes the viewport.
func (p *Pane) SetSize(width, height int) {
	p.Base.SetSize(width, height)
	p.vp.Width = width
	p.vp.Height = height
	p.rebuild()
}

// SetSubject shows a new profile, scrolled to the top on its first tab.
func (p *Pane) SetSubject(s profile.Subject) {
	p.subject = s
	p.tabs = s.Tabs()
	p.tab = 0
	p.press = nil
	p.rebuild()
	p.vp.GotoTop()
	p.report()
}

// Subject returns the profile on display.
func (p *Pane) Subject() profile.Subject { return p.subject }

// SetSpacerHeight sizes the placeholder under the header.
func (p *Pane) SetSpacerHeight(rows int) {
	rows = max(rows, 0)
	if rows == p.spacer {
		return
	}
	p.spacer = rows
	p.rebuild()
}

// SpacerHeight returns the current placeholder height.
func (p *Pane) SpacerHeight() int { return p.spacer }

// DisallowIntercept suspends the pane's own pointer handling while the
// header owns a drag.
func (p *Pane) DisallowIntercept(disallow bool) {
	p.intercepted = disallow
	if disallow {
		p.press = nil
	}
}

// Intercepted reports whether pointer handling is suspended.
func (p *Pane) Intercepted() bool { return p.intercepted }

// YOffset returns the scroll offset in rows.
func (p *Pane) YOffset() int { return p.vp.YOffset }

// MaxOffset returns the largest reachable offset.
func (p *Pane) MaxOffset() int {
	return max(len(p.lines)-p.vp.Height, 0)
}

// Tab returns the active shared-content tab.
func (p *Pane) Tab() profile.Tab {
	if len(p.tabs) == 0 {
		return profile.TabMedia
	}
	return p.tabs[p.tab]
}

// ScrollBy moves the content by n rows, down for positive n.
func (p *Pane) ScrollBy(n int) {
	p.vp.SetYOffset(p.vp.YOffset + n)
	p.report()
}

// PageDown scrolls by one viewport height.
func (p *Pane) PageDown() { p.ScrollBy(max(p.vp.Height-1, 1)) }

// PageUp scrolls back by one viewport height.
func (p *Pane) PageUp() { p.ScrollBy(-max(p.vp.Height-1, 1)) }

// Top scrolls to the start.
func (p *Pane) Top() {
	p.vp.GotoTop()
	p.report()
}

// Bottom scrolls to the end.
func (p *Pane) Bottom() {
	p.vp.GotoBottom()
	p.report()
}

// SetTab activates tab index i. Returns false if i is out of range or
// already active.
func (p *Pane) SetTab(i int) bool {
	if i < 0 || i >= len(p.tabs) || i == p.tab {
		return false
	}
	p.tab = i
	p.rebuild()
	return true
}

// NextTab activates the following tab, wrapping around.
func (p *Pane) NextTab() bool {
	if len(p.tabs) < 2 {
		return false
	}
	return p.SetTab((p.tab + 1) % len(p.tabs))
}

// PrevTab activates the previous tab, wrapping around.
func (p *Pane) PrevTab() bool {
	if len(p.tabs) < 2 {
		return false
	}
	return p.SetTab((p.tab + len(p.tabs) - 1) % len(p.tabs))
}

// View renders the visible rows.
func (p *Pane) View() string {
	return p.vp.View()
}

// Lines renders the visible rows, one string per row.
func (p *Pane) Lines() []string {
	if p.vp.Height <= 0 {
		return nil
	}
	return strings.Split(p.vp.View(), "\n")
}

// rebuild regenerates the content and keeps the offset in range. An offset
// clamped by a shorter content is reported like any other scroll.
func (p *Pane) rebuild() {
	p.lines = p.render()
	p.vp.SetContent(strings.Join(p.lines, "\n"))
	p.vp.SetYOffset(p.vp.YOffset)
	p.report()
}

func (p *Pane) report() {
	off := p.vp.YOffset
	if off == p.reported {
		return
	}
	p.reported = off
	if p.onScroll != nil {
		p.onScroll(off)
	}
}
