package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-goblins/internal/actors"
	"github.com/vovakirdan/tui-goblins/internal/config"
	"github.com/vovakirdan/tui-goblins/internal/core"
)

// quietConfig disables random walkers so runs only contain level content.
func quietConfig() config.GoblinsConfig {
	cfg := config.DefaultGoblinsConfig()
	cfg.Session.WalkerOdds = 0
	return cfg
}

func pitLevel() config.Level {
	return config.Level{
		ID:        "pit",
		Size:      &[2]float64{300, 240},
		HeroStart: &[2]float64{20, 100},
		Lives:     1,
	}
}

// runway is a flat floor with the goal just right of the start.
func runway() config.Level {
	return config.Level{
		ID:        "runway",
		Title:     "Runway",
		Size:      &[2]float64{300, 240},
		HeroStart: &[2]float64{20, 161},
		Lives:     2,
		Terrain: []config.TerrainSpec{
			{Kind: config.TerrainGround, X: 0, Y: 192, W: 300, H: 48},
			{Kind: config.TerrainWinArea, X: 60, Y: 150, W: 40, H: 42},
		},
	}
}

func builtin(t *testing.T, id string) config.Level {
	t.Helper()
	levels, err := config.BuiltinLevels()
	require.NoError(t, err)
	for _, l := range levels {
		if l.ID == id {
			return l
		}
	}
	t.Fatalf("level %q not found", id)
	return config.Level{}
}

func newSession(t *testing.T, level config.Level, cfg config.GoblinsConfig) *Session {
	t.Helper()
	s, err := NewSession(level, cfg, WithSeed(42))
	require.NoError(t, err)
	return s
}

func tickUntil(s *Session, limit int, done func() bool) int {
	for i := range limit {
		if done() {
			return i
		}
		s.Tick(core.NewInputFrame())
	}
	return limit
}

func TestNewSessionRejectsInvalidLevel(t *testing.T) {
	_, err := NewSession(config.Level{ID: "broken"}, quietConfig())
	assert.ErrorIs(t, err, config.ErrInvalidLevel)
}

func TestNewSessionBuildsLevel(t *testing.T) {
	level := builtin(t, "crypt")
	s := newSession(t, level, quietConfig())

	require.NotNil(t, s.Hero())
	assert.Equal(t, core.V(20, 150), s.Hero().Pos())
	assert.Equal(t, 3, s.Lives())
	assert.Equal(t, 3, s.MaxLives())
	assert.Len(t, s.Arena().Entities(), len(level.Terrain)+len(level.Enemies)+1)
	assert.Equal(t, core.V(960, 240), s.Arena().Size())
}

func TestSessionRespawnsThenEnds(t *testing.T) {
	s := newSession(t, pitLevel(), quietConfig())
	first := s.Hero()

	tickUntil(s, 400, func() bool { return s.Lives() == 0 })
	require.Equal(t, 0, s.Lives())
	assert.False(t, s.GameOver())
	require.NotNil(t, s.Hero())
	assert.NotSame(t, first, s.Hero())
	assert.False(t, s.Hero().Dead())
	assert.Len(t, s.Arena().Entities(), 1)

	tickUntil(s, 400, s.GameOver)
	assert.True(t, s.GameOver())
	assert.Nil(t, s.Hero())
	assert.Zero(t, s.Score())

	ticks := s.Ticks()
	s.Tick(core.NewInputFrame())
	assert.Equal(t, ticks+1, s.Ticks(), "the world keeps running after the end")
}

func TestSessionWin(t *testing.T) {
	cfg := quietConfig()
	s := newSession(t, runway(), cfg)

	for range 10 {
		s.Tick(core.FrameOf(core.ActionRight))
	}
	require.True(t, s.Won())
	assert.False(t, s.GameOver())
	assert.Equal(t, cfg.Session.WinBonus+2*cfg.Session.LifeBonus, s.Score())
}

func TestSessionScoresDefeats(t *testing.T) {
	level := runway()
	level.Terrain = level.Terrain[:1]
	level.Enemies = []config.EnemySpec{{Kind: config.EnemyShooter, X: 60, Y: 160}}
	cfg := quietConfig()
	s := newSession(t, level, cfg)

	s.Tick(core.FrameOf(core.ActionAttack))
	s.Tick(core.NewInputFrame())
	s.Tick(core.NewInputFrame())

	assert.Equal(t, cfg.Session.DefeatPoints, s.Score())
	assert.Equal(t, 1, s.Arena().Defeats())
}

func TestSessionSpawnsWalkersTowardHero(t *testing.T) {
	cfg := config.DefaultGoblinsConfig()
	cfg.Session.WalkerOdds = 2
	cfg.Difficulty.Enabled = false
	s := newSession(t, builtin(t, "graveyard"), cfg)

	for range 20 {
		s.Tick(core.NewInputFrame())
	}

	heroX := s.Hero().Pos().X
	walkers := 0
	for _, e := range s.Arena().Entities() {
		w, ok := e.(*actors.Walker)
		if !ok {
			continue
		}
		walkers++
		if w.Pos().X < heroX {
			assert.Equal(t, actors.Right, w.Facing())
		} else {
			assert.Equal(t, actors.Left, w.Facing())
		}
	}
	assert.Positive(t, walkers)
}

func TestSessionDeterminism(t *testing.T) {
	level := builtin(t, "graveyard")
	cfg := config.DefaultGoblinsConfig()
	cfg.Session.WalkerOdds = 20

	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.FrameOf(core.ActionRight)
		if i%40 == 10 {
			inputs[i].Set(core.ActionJump)
		}
		if i%25 == 0 {
			inputs[i].Set(core.ActionAttack)
		}
	}

	play := func() Frame {
		s := newSession(t, level, cfg)
		for _, in := range inputs {
			s.Tick(in)
		}
		return s.Frame()
	}

	assert.Equal(t, play(), play())
}
