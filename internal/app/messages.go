package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/portrait/internal/ui"
)

// NoticeExpiredMsg clears the status bar notice it was scheduled for.
// A newer notice bumps the ID, so stale expiries are ignored.
type NoticeExpiredMsg struct {
	ID int
}

// notify shows text in the status bar for ui.NotificationTTL.
func (m *Model) notify(text string) tea.Cmd {
	m.noticeID++
	id := m.noticeID
	m.Notice = text
	m.log.Debug("notice", zap.String("text", text))
	return tea.Tick(ui.NotificationTTL, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{ID: id}
	})
}
