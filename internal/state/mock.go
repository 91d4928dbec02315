// internal/state/mock.go
package state

import (
	"database/sql"
	"strings"

	"github.com/llehouerou/portrait/internal/profile"
)

// Mock is a test double for Manager.
type Mock struct {
	profiles  []profile.Subject
	viewState *ViewState
	saves     int
	closed    bool
}

// NewMock creates a new mock state manager for testing.
func NewMock(profiles ...profile.Subject) *Mock {
	m := &Mock{}
	for _, p := range profiles {
		_, _ = m.SaveProfile(p)
	}
	return m
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) ListProfiles() ([]profile.Subject, error) {
	return m.profiles, nil
}

func (m *Mock) GetProfile(id int64) (*profile.Subject, error) {
	for i := range m.profiles {
		if m.profiles[i].ID == id {
			s := m.profiles[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Mock) FindProfile(username string) (*profile.Subject, error) {
	username = strings.TrimPrefix(username, "@")
	for i := range m.profiles {
		if strings.EqualFold(m.profiles[i].Username, username) {
			s := m.profiles[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Mock) SaveProfile(s profile.Subject) (int64, error) {
	if s.ID == 0 {
		s.ID = int64(len(m.profiles) + 1)
	}
	for i := range m.profiles {
		if m.profiles[i].ID == s.ID {
			m.profiles[i] = s
			return s.ID, nil
		}
	}
	m.profiles = append(m.profiles, s)
	return s.ID, nil
}

func (m *Mock) SaveViewState(state ViewState) {
	m.saves++
	m.viewState = &state
}

func (m *Mock) GetViewState() (*ViewState, error) {
	return m.viewState, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetViewState(state *ViewState) { m.viewState = state }

func (m *Mock) ViewStateSaves() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
