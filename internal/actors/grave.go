package actors

import (
	"fmt"

	"github.com/vovakirdan/tui-goblins/internal/config"
	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/engine"
)

// Grave is a solid tombstone. Striking it often enough with weapons summons
// a magician above it.
type Grave struct {
	box      core.Box
	cfg      config.GraveConfig
	magician config.ShooterConfig

	hits     int
	cooldown int
	summoned int
}

// NewGrave creates a grave occupying box.
func NewGrave(box core.Box, cfg config.GraveConfig, magician config.ShooterConfig) (*Grave, error) {
	if box.W <= 0 || box.H <= 0 {
		return nil, fmt.Errorf("%w: grave size %.0fx%.0f", ErrInvalidTerrain, box.W, box.H)
	}
	return &Grave{box: box, cfg: cfg, magician: magician}, nil
}

func (g *Grave) Pos() core.Vec           { return g.box.Pos() }
func (g *Grave) Size() core.Vec          { return g.box.Size() }
func (g *Grave) Sprite() engine.SpriteID { return engine.NoSprite }

func (g *Grave) Caps() engine.Capability {
	return engine.CapSolid | engine.CapJumpable | engine.CapGrave
}

// Hits returns the strikes counted toward the next summon.
func (g *Grave) Hits() int { return g.hits }

// Summoned returns how many magicians the grave has raised.
func (g *Grave) Summoned() int { return g.summoned }

// Strike registers a weapon hit unless the grave is still shaking off the
// previous one.
func (g *Grave) Strike() {
	if g.cooldown > 0 {
		return
	}
	g.hits++
	g.cooldown = g.cfg.HitCooldown
}

func (g *Grave) Update(w engine.World) {
	if g.cooldown > 0 {
		g.cooldown--
	}
	if g.cfg.HitsToSummon <= 0 || g.hits < g.cfg.HitsToSummon {
		return
	}
	g.hits = 0
	g.summoned++
	w.Spawn(NewMagician(core.V(g.box.X, g.box.Y-g.cfg.SummonOffset), g.magician))
}
