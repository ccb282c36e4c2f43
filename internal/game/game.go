package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-goblins/internal/config"
	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom tuning file used by every new run.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects a preset by name; unknown names clear it.
func SetDifficultyPreset(preset string) {
	switch p := config.DifficultyPreset(preset); p {
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		difficultyPreset = p
	default:
		difficultyPreset = ""
	}
}

// SetLogger routes session events of every new run to l.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// LoadConfig resolves the tuning for a new run: the configured file or the
// defaults, with the selected preset applied.
func LoadConfig() config.GoblinsConfig {
	cfg, err := config.LoadGoblins(configPath)
	if err != nil {
		logger.Warn("using default tuning", "path", configPath, "err", err)
		cfg = config.DefaultGoblinsConfig()
	}
	if difficultyPreset != "" {
		config.ApplyGoblinsPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Game plays one level in the terminal.
type Game struct {
	level   config.Level
	cfg     config.GoblinsConfig
	runtime core.RuntimeConfig
	session *Session
	view    View
	paused  bool
	err     error
}

// New creates a game for level. Call Reset before stepping it.
func New(level config.Level) *Game {
	return &Game{level: level}
}

// ID returns the level id.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the level title, or its id when untitled.
func (g *Game) Title() string {
	if g.level.Title == "" {
		return g.level.ID
	}
	return g.level.Title
}

// Reset starts a new run of the level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = LoadConfig()
	g.paused = false

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.session, g.err = NewSession(g.level, g.cfg, WithSeed(seed), WithLogger(logger))
	if g.err != nil {
		logger.Error("cannot start level", "level", g.level.ID, "err", g.err)
		return
	}
	g.fitView()
}

// Err returns the error that prevented the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// Session returns the current run, or nil if the level failed to load.
func (g *Game) Session() *Session {
	return g.session
}

// Resize refits the camera to a new screen size, keeping the run.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW, g.runtime.ScreenH = screenW, screenH
	if g.session != nil {
		g.fitView()
	}
}

// fitView sizes the camera to the screen, leaving the top row to the HUD.
func (g *Game) fitView() {
	g.view.W = float64(g.runtime.ScreenW) * g.cfg.Render.CellWidth
	g.view.H = float64(max(0, g.runtime.ScreenH-hudRows)) * g.cfg.Render.CellHeight
	g.view.Follow(g.heroEntity(), g.session.Arena().Size())
}

// Step advances the run by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	state := g.State()
	if in.Has(core.ActionRestart) && state.GameOver {
		g.runtime.Seed = 0
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !state.GameOver {
		g.paused = !g.paused
	}
	if !g.paused {
		g.session.Tick(in)
		g.view.Follow(g.heroEntity(), g.session.Arena().Size())
	}
	return core.StepResult{State: g.State()}
}

// State returns the current run state. A cleared level counts as over.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Lives:    g.session.Lives(),
		Ticks:    g.session.Ticks(),
		Won:      g.session.Won(),
		GameOver: g.session.GameOver() || g.session.Won(),
		Paused:   g.paused,
	}
}

// Register adds every built-in level to the registry.
func Register() error {
	levels, err := config.BuiltinLevels()
	if err != nil {
		return err
	}
	for _, lvl := range levels {
		registry.Register(lvl.ID, func() registry.Game {
			return New(lvl)
		})
	}
	return nil
}

var _ registry.Resizable = (*Game)(nil)

func init() {
	if err := Register(); err != nil {
		panic(err)
	}
}
