package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/storage"
)

// fakeGame ends after a fixed number of ticks and records its input.
type fakeGame struct {
	endAt  int
	won    bool
	ticks  int
	resets int
	inputs []core.InputFrame
	size   [2]int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.ticks = 0
	g.resets++
	g.size = [2]int{cfg.ScreenW, cfg.ScreenH}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if g.ticks < g.endAt {
		g.ticks++
	}
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	over := g.ticks >= g.endAt
	return core.GameState{Score: g.ticks * 10, Lives: 1, Ticks: g.ticks, GameOver: over, Won: over && g.won}
}

func (g *fakeGame) Resize(w, h int) {
	g.size = [2]int{w, h}
}

func newTestModel(t *testing.T, g *fakeGame, store *storage.Store) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 7}
	return NewModel(g, store, cfg, WithHoldTicks(2), WithPlayer("arthur"))
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{Gen: m.gen})
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelHeldInputReachesGame(t *testing.T) {
	g := &fakeGame{endAt: 100}
	m := newTestModel(t, g, nil)

	m, _ = press(t, m, runeKey('d'))
	m = tick(t, m)
	m = tick(t, m)
	m = tick(t, m)

	require.Len(t, g.inputs, 3)
	assert.True(t, g.inputs[0].Has(core.ActionRight))
	assert.True(t, g.inputs[1].Has(core.ActionRight))
	assert.False(t, g.inputs[2].Has(core.ActionRight))
	assert.Equal(t, 3, m.State().Ticks)
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := &fakeGame{endAt: 100}
	m := newTestModel(t, g, nil)

	next, cmd := m.Update(TickMsg{Gen: m.gen + 1})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, next.(Model).State().Ticks)
	assert.Empty(t, g.inputs)
}

func TestModelSavesFinishedRunOnce(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{endAt: 3, won: true}
	m := newTestModel(t, g, store)

	for range 6 {
		m = tick(t, m)
	}

	runs, err := store.RecentRuns("fake", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, storage.OutcomeWon, runs[0].Outcome)
	assert.Equal(t, 30, runs[0].Score)
	assert.Equal(t, int64(7), runs[0].Seed)
	assert.Equal(t, "arthur", runs[0].Player)

	high, err := store.HighScore("fake")
	require.NoError(t, err)
	assert.Equal(t, 30, high)
}

func TestModelRestartAfterGameOver(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{endAt: 2}
	m := newTestModel(t, g, store)
	m = tick(t, m)
	m = tick(t, m)
	require.True(t, m.State().GameOver)

	m, _ = press(t, m, runeKey('r'))
	m = tick(t, m)

	assert.Equal(t, 2, g.resets)
	assert.False(t, m.State().GameOver)
	assert.NotEqual(t, int64(7), m.config.Seed)

	m = tick(t, m)
	m = tick(t, m)
	runs, err := store.RecentRuns("fake", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.Equal(t, storage.OutcomeGameOver, runs[0].Outcome)
}

func TestModelQuitRecordsAbandonedRun(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{endAt: 100}
	m := newTestModel(t, g, store)
	m = tick(t, m)

	m, cmd := press(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.True(t, m.Done())
	assert.Empty(t, m.View())

	runs, err := store.RecentRuns("fake", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, storage.OutcomeQuit, runs[0].Outcome)

	scores, err := store.TopScores("fake", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestModelQuitBeforeFirstTick(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, &fakeGame{endAt: 100}, store)

	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	runs, err := store.RecentRuns("", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{endAt: 100}
	m := newTestModel(t, g, nil)
	m = tick(t, m)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	assert.Equal(t, 1, g.resets)
	assert.Equal(t, [2]int{100, 30}, g.size)
	assert.Equal(t, 1, m.State().Ticks)
	assert.Contains(t, m.View(), "fake")
}
