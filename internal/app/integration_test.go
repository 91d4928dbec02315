package app

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"
)

// TestIntegration_Program runs the model inside a headless bubbletea
// program: first paint, a subject switch, then quit.
func TestIntegration_Program(t *testing.T) {
	st := newMock()
	m, err := New(testConfig(), st, Options{Loader: solidLoader{}})
	require.NoError(t, err)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 30))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Ada Lovelace")) && bytes.Contains(out, []byte("Info"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Grace Hopper"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	fm, ok := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second)).(Model)
	require.True(t, ok, "final model should be app.Model")
	require.Equal(t, "Grace Hopper", fm.CurrentSubject().Name)

	saved, err := st.GetViewState()
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.Equal(t, int64(2), saved.ProfileID)
}
