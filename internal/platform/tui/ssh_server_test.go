package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/registry"
)

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{endAt: 100} })
}

func step(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}, WithPlayer("arthur"))
	assert.Contains(t, m.View(), "Fake")

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.play)
	require.NotNil(t, cmd)

	m, _ = step(t, m, TickMsg{Gen: m.play.gen})
	assert.Equal(t, 1, m.play.State().Ticks)

	// Leaving the game returns to the menu instead of closing the session.
	m, _ = step(t, m, runeKey('q'))
	assert.Nil(t, m.play)
	assert.False(t, m.quitting)
	assert.Contains(t, m.View(), "Choose a level")

	runs, err := store.RecentRuns("fake", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "arthur", runs[0].Player)

	m, cmd = step(t, m, runeKey('q'))
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 30})

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, m.board)
	assert.Contains(t, m.View(), "HIGH SCORES")

	m, _ = step(t, m, runeKey('v'))
	assert.Contains(t, m.View(), "RECENT RUNS")

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.board)
	assert.Contains(t, m.View(), "Choose a level")
}
