package actors

import (
	"math"

	"github.com/vovakirdan/tui-goblins/internal/config"
	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/engine"
)

// ShooterState is the animation state of a shooter.
type ShooterState int

const (
	ShooterIdle ShooterState = iota
	ShooterShooting1
	ShooterShooting2
	ShooterShooting3
	ShooterShooting4
)

func (s ShooterState) String() string {
	switch s {
	case ShooterShooting1:
		return "Shooting1"
	case ShooterShooting2:
		return "Shooting2"
	case ShooterShooting3:
		return "Shooting3"
	case ShooterShooting4:
		return "Shooting4"
	default:
		return "Idle"
	}
}

// Shooter is a stationary enemy that turns toward the knight and fires a
// projectile at it whenever its cooldown runs out. Plants fire eyeballs;
// magicians fire bolts that turn the knight into a frog.
type Shooter struct {
	cfg    config.ShooterConfig
	family string
	shot   ProjectileKind

	pos    core.Vec
	facing Direction
	state  ShooterState

	cooldown      int
	cooldownStart int
	cooldownRange func() config.Range
}

// NewPlant creates an eyeball-spitting plant at pos.
func NewPlant(pos core.Vec, cfg config.ShooterConfig) *Shooter {
	return newShooter(pos, cfg, FamilyPlant, Eyeball)
}

// NewMagician creates a caster of transforming bolts at pos.
func NewMagician(pos core.Vec, cfg config.ShooterConfig) *Shooter {
	return newShooter(pos, cfg, FamilyMagician, MagicBolt)
}

func newShooter(pos core.Vec, cfg config.ShooterConfig, family string, shot ProjectileKind) *Shooter {
	s := &Shooter{
		cfg:           cfg,
		family:        family,
		shot:          shot,
		pos:           pos,
		facing:        Right,
		cooldown:      cfg.InitialCooldown,
		cooldownStart: cfg.InitialCooldown,
	}
	s.cooldownRange = func() config.Range { return s.cfg.Cooldown }
	return s
}

// SetCooldownSource makes the shooter draw its cooldown range from src on
// every reload, so difficulty can change it mid-run.
func (s *Shooter) SetCooldownSource(src func() config.Range) {
	if src != nil {
		s.cooldownRange = src
	}
}

func (s *Shooter) Pos() core.Vec           { return s.pos }
func (s *Shooter) Size() core.Vec          { return core.V(s.cfg.Width, s.cfg.Height) }
func (s *Shooter) Caps() engine.Capability { return engine.CapHazard }

func (s *Shooter) Sprite() engine.SpriteID {
	return spriteID(s.family, s.state.String()+s.facing.String())
}

// State returns the current animation state.
func (s *Shooter) State() ShooterState { return s.state }

// Facing returns the direction the shooter looks at.
func (s *Shooter) Facing() Direction { return s.facing }

// Cooldown returns the ticks left before the next shot.
func (s *Shooter) Cooldown() int { return s.cooldown }

// Update turns toward the knight and fires when ready. Without a living
// knight within range the shooter rests and its cooldown is frozen.
func (s *Shooter) Update(w engine.World) {
	target := findTarget(w)
	if target == nil || target.Dead() || target.Won() {
		return
	}

	from, to := core.Center(s.pos, s.Size()), engine.CenterOf(target)
	if math.Abs(to.X-from.X) > s.cfg.Range {
		s.state = ShooterIdle
		return
	}

	if s.pos.X < target.Pos().X {
		s.facing = Right
	} else {
		s.facing = Left
	}

	if s.cooldown > 0 {
		s.cooldown--
	} else {
		s.fire(w, from, to)
	}
	s.chooseState()
}

func (s *Shooter) fire(w engine.World, from, to core.Vec) {
	dx := to.X - from.X
	if dx == 0 {
		dx = 1
	}
	angle := math.Atan((to.Y - from.Y) / dx)
	if to.X < from.X {
		angle += math.Pi
	}

	size := s.shot.Size()
	spawn := from.Sub(size.Scale(0.5))
	w.Spawn(NewProjectile(s.shot, spawn, core.Polar(s.cfg.ProjectileSpeed, angle)))

	r := s.cooldownRange()
	s.cooldown = randRange(w.Rand(), r.Min, r.Max)
	s.cooldownStart = s.cooldown
}

// chooseState shows how far the current reload has progressed, in quarters.
func (s *Shooter) chooseState() {
	quarter := float64(s.cooldownStart) / 4
	remaining := float64(s.cooldown)
	switch {
	case remaining > quarter*3:
		s.state = ShooterShooting1
	case remaining > quarter*2:
		s.state = ShooterShooting2
	case remaining > quarter:
		s.state = ShooterShooting3
	default:
		s.state = ShooterShooting4
	}
}
