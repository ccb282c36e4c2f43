package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/registry"
	"github.com/vovakirdan/tui-goblins/internal/storage"
)

// defaultHoldTicks keeps a movement key held across the gap before the
// terminal starts autorepeating.
const defaultHoldTicks = 8

// Model is the Bubble Tea model that plays one level.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      *HeldKeys
	keyMapper *KeyMapper
	logger    *log.Logger
	player    string
	gameState core.GameState
	quitting  bool
	gen       uint64
	runSaved  *bool // shared across value copies of the model
}

// Option configures a Model.
type Option func(*Model)

// WithHoldTicks sets how long a movement key counts as held.
func WithHoldTicks(ticks int) Option {
	return func(m *Model) {
		m.keys = NewHeldKeys(ticks)
	}
}

// WithLogger routes run events to l.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPlayer names the player in the run history.
func WithPlayer(name string) Option {
	return func(m *Model) {
		m.player = name
	}
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keys:      NewHeldKeys(defaultHoldTicks),
		keyMapper: NewKeyMapper(),
		logger:    log.New(io.Discard),
		gen:       nextGeneration(),
		runSaved:  new(bool),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen || m.quitting {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit || action == core.ActionBack {
		m.saveRun(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	}
	m.keys.Press(action)
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.keys.Frame()

	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		*m.runSaved = false
		m.keys.Release()
		m.logger.Debug("run restarted", "level", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate, m.gen)
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if m.gameState.GameOver {
		outcome := storage.OutcomeGameOver
		if m.gameState.Won {
			outcome = storage.OutcomeWon
		}
		m.saveRun(outcome)
	}
	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveRun records the current run once. Quitting before the first tick
// records nothing.
func (m Model) saveRun(outcome storage.Outcome) {
	if *m.runSaved || m.gameState.Ticks == 0 {
		return
	}
	*m.runSaved = true

	m.logger.Info("run finished",
		"level", m.game.ID(),
		"outcome", outcome,
		"score", m.gameState.Score,
		"ticks", m.gameState.Ticks,
	)
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		LevelID:   m.game.ID(),
		Score:     m.gameState.Score,
		Outcome:   outcome,
		Ticks:     m.gameState.Ticks,
		LivesLeft: m.gameState.Lives,
		Seed:      m.config.Seed,
		Player:    m.player,
	})
	if err != nil {
		m.logger.Error("cannot save run", "level", m.game.ID(), "err", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".goblins", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Done reports whether the player left the game.
func (m Model) Done() bool {
	return m.quitting
}

// State returns the run state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run plays game in the terminal until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
