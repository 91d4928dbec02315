package app

import "github.com/llehouerou/portrait/internal/state"

// viewState captures what the next start restores.
func (m Model) viewState() state.ViewState {
	return state.ViewState{
		ProfileID:  m.CurrentSubject().ID,
		PhotoIndex: m.Header.Gallery().Index(),
		Tab:        int(m.Content.Tab()),
		Expanded:   m.Header.IsExpanded(),
	}
}

// persist saves the view state when it changed. Nothing is saved while the
// header is moving, so only settled states are written.
func (m *Model) persist() {
	ctrl := m.Header.Controller()
	if ctrl.Animating() || ctrl.Dragging() {
		return
	}
	vs := m.viewState()
	if vs == m.saved {
		return
	}
	m.StateMgr.SaveViewState(vs)
	m.saved = vs
}
