package app

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/portrait/internal/errmsg"
	"github.com/llehouerou/portrait/internal/header"
	"github.com/llehouerou/portrait/internal/ui/action"
	"github.com/llehouerou/portrait/internal/ui/gallery"
	"github.com/llehouerou/portrait/internal/ui/profilecontent"
	"github.com/llehouerou/portrait/internal/ui/profileheader"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.persist()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case action.Msg:
		return m.handleAction(msg)

	case NoticeExpiredMsg:
		if msg.ID == m.noticeID {
			m.Notice = ""
		}
		return m, nil

	case gallery.ReadyMsg:
		var cmd tea.Cmd
		m.Header, cmd = m.Header.Update(msg)
		if msg.Err != nil {
			m.ErrorMsg = errmsg.FormatWith(errmsg.OpPhotoLoad, filepath.Base(msg.Handle), msg.Err)
		}
		return m, cmd

	case profileheader.FrameMsg, header.DeferredMsg:
		var cmd tea.Cmd
		m.Header, cmd = m.Header.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	cmd := m.resize()

	if m.expandOnSize {
		m.expandOnSize = false
		var expand tea.Cmd
		m.Header, expand = m.Header.Expand()
		cmd = tea.Batch(cmd, expand)
	}
	return m, cmd
}

// resize lays both panes out for the current window and help height.
func (m *Model) resize() tea.Cmd {
	area := m.areaHeight()
	m.Help.Width = m.Width
	m.Content.SetSize(m.Width, area)
	load := m.Header.SetSize(m.Width, area)

	var sync tea.Cmd
	m.Header, sync = m.Header.Sync()
	return tea.Batch(load, sync)
}

// handleMouseMsg gives the pointer to the header while it owns it and to
// the content otherwise. A content overscroll at the top hands the drag
// over to the header.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.Header.Owns(msg) {
		var cmd tea.Cmd
		m.Header, cmd = m.Header.Update(msg)
		return m, cmd
	}
	if msg.Y >= m.areaHeight() {
		return m, nil
	}

	res := m.Content.HandleMouse(msg)

	var cmd tea.Cmd
	if res.Handoff {
		m.Header, cmd = m.Header.Handoff(msg, res.StartY)
	} else {
		m.Header, cmd = m.Header.Sync()
	}
	return m, tea.Batch(res.Cmd, cmd)
}

func (m Model) handleAction(msg action.Msg) (Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case profileheader.Menu:
		return m, m.notify("Open menu")

	case profileheader.Back:
		return m, m.notify("Go back")

	case profileheader.Avatar:
		var cmd tea.Cmd
		m.Header, cmd = m.Header.Expand()
		return m, cmd

	case profileheader.Button:
		return m, m.notify(a.Label + " · " + m.CurrentSubject().Title())

	case profilecontent.TabChanged:
		// Tab is read back by persist.
		return m, nil
	}
	return m, nil
}

// showSubject binds Subjects[i] to both panes, closing the photo view.
func (m *Model) showSubject(i int) tea.Cmd {
	m.Current = i
	s := m.Subjects[i]

	var cancel, collapse, sync tea.Cmd
	m.Header, cancel = m.Header.Cancel()
	if m.Header.IsExpanded() {
		m.Header, collapse = m.Header.Collapse()
	}
	load := m.Header.SetSubject(s)
	m.Content.SetSubject(s)
	m.Header, sync = m.Header.Sync()

	return tea.Batch(cancel, collapse, load, sync, tea.SetWindowTitle(m.windowTitle()))
}

// switchSubject moves by delta through Subjects, wrapping at both ends.
func (m *Model) switchSubject(delta int) tea.Cmd {
	n := len(m.Subjects)
	if n <= 1 {
		return nil
	}
	i := ((m.Current+delta)%n + n) % n
	return m.showSubject(i)
}
