package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/portrait/internal/app/handler"
	"github.com/llehouerou/portrait/internal/keymap"
	"github.com/llehouerou/portrait/internal/ui/action"
	"github.com/llehouerou/portrait/internal/ui/profileheader"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Any key dismisses the error.
	m.ErrorMsg = ""

	a := m.Keys.Resolve(msg.String())
	if a == keymap.ActionQuit {
		return m, tea.Quit
	}

	_, cmd := handler.Chain(a,
		m.handleGlobalKeys,
		m.handleHeaderKeys,
		m.handleContentKeys,
	)
	return m, cmd
}

func (m *Model) handleGlobalKeys(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionHelp:
		m.ShowFullHelp = !m.ShowFullHelp
		m.Help.ShowAll = m.ShowFullHelp
		return handler.Handled(m.resize())
	case keymap.ActionNextSubject:
		return handler.Handled(m.switchSubject(1))
	case keymap.ActionPrevSubject:
		return handler.Handled(m.switchSubject(-1))
	}
	return handler.NotHandled
}

func (m *Model) handleHeaderKeys(a keymap.Action) handler.Result {
	var cmd tea.Cmd
	switch a {
	case keymap.ActionToggleExpand:
		m.Header, cmd = m.Header.Toggle()
	case keymap.ActionNextPhoto:
		m.Header, cmd = m.Header.NextPhoto()
	case keymap.ActionPrevPhoto:
		m.Header, cmd = m.Header.PrevPhoto()
	case keymap.ActionAvatar:
		m.Header, cmd = m.Header.Expand()
	case keymap.ActionMenu:
		cmd = action.Cmd(profileheader.Source, profileheader.Menu{})
	case keymap.ActionBack:
		if m.Header.IsExpanded() {
			m.Header, cmd = m.Header.Collapse()
		} else {
			cmd = action.Cmd(profileheader.Source, profileheader.Back{})
		}
	default:
		return handler.NotHandled
	}
	return handler.Handled(cmd)
}

// handleContentKeys scrolls or switches tabs. The pane reports the new
// offset to the header controller, so the header is synced afterwards.
func (m *Model) handleContentKeys(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionScrollDown:
		m.Content.ScrollBy(1)
	case keymap.ActionScrollUp:
		m.Content.ScrollBy(-1)
	case keymap.ActionPageDown:
		m.Content.PageDown()
	case keymap.ActionPageUp:
		m.Content.PageUp()
	case keymap.ActionJumpStart:
		m.Content.Top()
	case keymap.ActionJumpEnd:
		m.Content.Bottom()
	case keymap.ActionNextTab:
		m.Content.NextTab()
	case keymap.ActionPrevTab:
		m.Content.PrevTab()
	default:
		return handler.NotHandled
	}

	var cmd tea.Cmd
	m.Header, cmd = m.Header.Sync()
	return handler.Handled(cmd)
}
