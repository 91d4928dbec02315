package profileheader

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/portrait/internal/header"
	"github.com/llehouerou/portrait/internal/ui/action"
	"github.com/llehouerou/portrait/internal/ui/gallery"
)

// Update handles mouse input routed to the header, animation frames,
// deferred controller work and photo loads.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)

	case FrameMsg:
		m.ticking = false
		m.ctrl.Tick(m.now())
		return m.Sync()

	case header.DeferredMsg:
		m.ctrl.RunDeferred()
		return m.Sync()

	case gallery.ReadyMsg:
		if msg.Err != nil {
			m.log.Warn("photo load failed",
				zap.String("handle", msg.Handle),
				zap.Error(msg.Err))
		}
		return m, nil
	}
	return m, nil
}

// Sync returns the commands the controller needs after being driven from
// outside Update: the next animation frame and the deferred-work drain.
func (m Model) Sync() (Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.ctrl.Animating() && !m.ticking {
		m.ticking = true
		cmds = append(cmds, tea.Tick(m.ctrl.Tunables().FrameInterval, func(_ time.Time) tea.Msg {
			return FrameMsg{}
		}))
	}
	if m.ctrl.HasDeferred() {
		cmds = append(cmds, func() tea.Msg { return header.DeferredMsg{} })
	}
	return m, tea.Batch(cmds...)
}

// Owns reports whether the header should receive msg: it keeps the pointer
// for the whole of a drag, and claims presses inside its extent.
func (m Model) Owns(msg tea.MouseMsg) bool {
	if m.ctrl.Dragging() {
		return true
	}
	return msg.Action == tea.MouseActionPress &&
		msg.Button == tea.MouseButtonLeft &&
		msg.Y >= 0 && msg.Y < m.Extent()
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	now := m.now()
	y := float64(msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.ctrl.PointerDown(y, now) {
			m.pressX = msg.X
		}

	case tea.MouseActionMotion:
		if m.ctrl.Dragging() {
			m.ctrl.PointerMove(y, now)
		}

	case tea.MouseActionRelease:
		rel, ok := m.ctrl.PointerUp(y, now)
		if ok && rel.Tap {
			tap := m.tap(m.pressX, msg.Y)
			var sync tea.Cmd
			m, sync = m.Sync()
			return m, tea.Batch(tap, sync)
		}
	}

	return m.Sync()
}

// Handoff gives the header a drag that started as a content overscroll.
func (m Model) Handoff(msg tea.MouseMsg, startY int) (Model, tea.Cmd) {
	now := m.now()
	if m.ctrl.Handoff(float64(startY), now) {
		m.pressX = msg.X
		m.ctrl.PointerMove(float64(msg.Y), now)
	}
	return m.Sync()
}

// Cancel aborts an active drag, e.g. when the window loses the pointer.
func (m Model) Cancel() (Model, tea.Cmd) {
	m.ctrl.Cancel(m.now())
	return m.Sync()
}

// Toggle opens or closes the photo view.
func (m Model) Toggle() (Model, tea.Cmd) {
	m.ctrl.Toggle(m.now())
	return m.Sync()
}

// Expand opens the photo view.
func (m Model) Expand() (Model, tea.Cmd) {
	m.ctrl.Expand(m.now())
	return m.Sync()
}

// Collapse closes the photo view.
func (m Model) Collapse() (Model, tea.Cmd) {
	m.ctrl.Collapse(m.now())
	return m.Sync()
}

// OnScroll forwards the content offset to the controller.
func (m Model) OnScroll(offset int) (Model, tea.Cmd) {
	m.ctrl.OnScroll(float64(offset), m.now())
	return m.Sync()
}

// NextPhoto shows the following photo while expanded.
func (m Model) NextPhoto() (Model, tea.Cmd) {
	if !m.ctrl.IsExpanded() || !m.gallery.Next() {
		return m, nil
	}
	return m, m.preparePhotos()
}

// PrevPhoto shows the previous photo while expanded.
func (m Model) PrevPhoto() (Model, tea.Cmd) {
	if !m.ctrl.IsExpanded() || !m.gallery.Prev() {
		return m, nil
	}
	return m, m.preparePhotos()
}

// tap resolves a tap at cell (x, y) against the chrome.
func (m *Model) tap(x, y int) tea.Cmd {
	switch hit := m.HitTest(x, y); hit.Kind {
	case HitBack:
		return m.actions.OnBackAction()
	case HitMenu:
		return m.actions.OnMenuAction()
	case HitAvatar:
		return m.actions.OnAvatarAction()
	case HitButton:
		return action.Cmd(Source, Button{Label: hit.Label})
	case HitPhotoLeft:
		_, cmd := m.PrevPhoto()
		return cmd
	case HitPhotoRight:
		_, cmd := m.NextPhoto()
		return cmd
	}
	return nil
}
