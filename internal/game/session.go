// Package game runs playthroughs of a level: lives, respawns, random walker
// spawns and scoring around the engine Arena, plus the camera, frame export
// and terminal rendering used by the front-ends.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-goblins/internal/actors"
	"github.com/vovakirdan/tui-goblins/internal/config"
	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/engine"
)

// Session is one run of a level. When the hero finishes dying the level is
// rebuilt and a new hero spawned, until no lives remain.
type Session struct {
	level      config.Level
	cfg        config.GoblinsConfig
	logger     *log.Logger
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	arena    *engine.Arena
	hero     *actors.Knight
	lives    int
	maxLives int
	won      bool
	gameOver bool
}

// Option configures a Session.
type Option func(*Session)

// WithSeed makes the run reproducible.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger routes session events to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession validates level and builds its world.
func NewSession(level config.Level, cfg config.GoblinsConfig, opts ...Option) (*Session, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		level:      level,
		cfg:        cfg,
		logger:     log.New(io.Discard),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	arena, err := engine.NewArena(level.Size[0], level.Size[1], engine.WithRand(s.rng))
	if err != nil {
		return nil, fmt.Errorf("game: level %s: %w", level.ID, err)
	}
	s.arena = arena
	s.lives = level.StartingLives(cfg.Session)
	s.maxLives = s.lives

	if err := s.populate(); err != nil {
		return nil, err
	}
	s.logger.Debug("session started", "level", level.ID, "lives", s.lives)
	return s, nil
}

// populate spawns the static content of the level followed by a new hero.
func (s *Session) populate() error {
	for _, t := range s.level.Terrain {
		e, err := s.terrain(t)
		if err != nil {
			return fmt.Errorf("game: level %s: %w", s.level.ID, err)
		}
		s.arena.Spawn(e)
	}
	for _, spec := range s.level.Enemies {
		s.arena.Spawn(s.enemy(spec))
	}

	start := core.V(s.level.HeroStart[0], s.level.HeroStart[1])
	s.hero = actors.NewKnight(start, s.cfg.Knight, actors.Weapons{Torch: s.cfg.Torch, Flame: s.cfg.Flame})
	s.arena.Spawn(s.hero)
	return nil
}

func (s *Session) terrain(t config.TerrainSpec) (engine.Entity, error) {
	box := core.Box{X: t.X, Y: t.Y, W: t.W, H: t.H}
	switch t.Kind {
	case config.TerrainGround:
		return actors.NewGround(box)
	case config.TerrainSolid:
		return actors.NewSolid(box)
	case config.TerrainPlatform:
		return actors.NewPlatform(box)
	case config.TerrainLadder:
		return actors.NewLadder(box)
	case config.TerrainGrave:
		return actors.NewGrave(box, s.cfg.Grave, s.cfg.Magician)
	case config.TerrainWinArea:
		return actors.NewWinArea(box)
	}
	return nil, fmt.Errorf("%w: unknown terrain kind %q", config.ErrInvalidLevel, t.Kind)
}

func (s *Session) enemy(spec config.EnemySpec) engine.Entity {
	pos := core.V(spec.X, spec.Y)
	switch spec.Kind {
	case config.EnemyShooter:
		return s.shooter(actors.NewPlant(pos, s.cfg.Shooter), s.cfg.Shooter.Cooldown)
	case config.EnemyMagician:
		return s.shooter(actors.NewMagician(pos, s.cfg.Magician), s.cfg.Magician.Cooldown)
	default:
		return actors.NewWalker(pos, actors.ParseDirection(spec.Direction), s.cfg.Walker, s.cfg.TickRate, s.rng)
	}
}

// shooter ties the reload range to the difficulty curve.
func (s *Session) shooter(sh *actors.Shooter, base config.Range) *actors.Shooter {
	sh.SetCooldownSource(func() config.Range {
		return s.difficulty.Cooldown(base, s.Score(), s.arena.Count())
	})
	return sh
}

// Tick advances the world by one frame and applies the run rules.
func (s *Session) Tick(in core.InputFrame) {
	s.arena.Tick(in)
	if s.won || s.gameOver {
		return
	}

	s.maybeSpawnWalker()

	if s.hero.Won() {
		s.won = true
		s.logger.Info("level cleared", "level", s.level.ID, "score", s.Score(), "ticks", s.arena.Count())
		return
	}

	if s.arena.Alive(s.hero) {
		return
	}
	if s.lives > 0 {
		s.respawn()
		return
	}
	s.gameOver = true
	s.hero = nil
	s.logger.Info("game over", "level", s.level.ID, "score", s.Score(), "ticks", s.arena.Count())
}

// maybeSpawnWalker rolls for a walker rising near the hero and walking
// toward it. Non-positive odds disable random walkers.
func (s *Session) maybeSpawnWalker() {
	base := s.cfg.Session.WalkerOdds
	if base <= 0 {
		return
	}
	odds := s.difficulty.WalkerOdds(base, s.Score(), s.arena.Count())
	if s.rng.Intn(odds) != 0 {
		return
	}

	offset := float64(s.cfg.Session.WalkerOffset.Min)
	if span := s.cfg.Session.WalkerOffset.Max - s.cfg.Session.WalkerOffset.Min; span > 0 {
		offset += float64(s.rng.Intn(span + 1))
	}

	hero := s.hero.Pos()
	dir := actors.Right
	if s.rng.Intn(2) == 1 {
		dir = actors.Left
	}
	pos := core.V(hero.X+offset, hero.Y)
	if dir == actors.Right {
		pos.X = hero.X - offset
	}
	s.arena.Spawn(actors.NewWalker(pos, dir, s.cfg.Walker, s.cfg.TickRate, s.rng))
	s.logger.Debug("walker spawned", "x", pos.X, "direction", dir)
}

// respawn clears the world, restores the level content and brings in a
// fresh hero at the cost of one life.
func (s *Session) respawn() {
	s.arena.KillAll()
	s.lives--
	if err := s.populate(); err != nil {
		// The level already built once, so terrain cannot fail here.
		s.logger.Error("respawn failed", "level", s.level.ID, "err", err)
		s.gameOver = true
		s.hero = nil
		return
	}
	s.logger.Info("life lost", "level", s.level.ID, "lives", s.lives)
}

// Score is the defeat tally, plus the win and remaining-life bonuses once
// the level is cleared.
func (s *Session) Score() int {
	score := s.arena.Defeats() * s.cfg.Session.DefeatPoints
	if s.won {
		score += s.cfg.Session.WinBonus + s.lives*s.cfg.Session.LifeBonus
	}
	return score
}

func (s *Session) Won() bool            { return s.won }
func (s *Session) GameOver() bool       { return s.gameOver }
func (s *Session) Lives() int           { return s.lives }
func (s *Session) MaxLives() int        { return s.maxLives }
func (s *Session) Level() config.Level  { return s.level }
func (s *Session) Arena() *engine.Arena { return s.arena }
func (s *Session) Ticks() int           { return s.arena.Count() }

// Hero returns the current knight, or nil once the game is over.
func (s *Session) Hero() *actors.Knight { return s.hero }
