package actors

import (
	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/engine"
)

// ProjectileKind selects what an enemy projectile does to the knight.
type ProjectileKind int

const (
	Eyeball   ProjectileKind = iota // hurts
	MagicBolt                       // transforms
)

// Size returns the collision box extent of the kind.
func (k ProjectileKind) Size() core.Vec {
	if k == MagicBolt {
		return core.V(12, 12)
	}
	return core.V(10, 11)
}

// Projectile flies at a constant velocity, without gravity, until it
// leaves the world or a weapon destroys it.
type Projectile struct {
	kind ProjectileKind
	pos  core.Vec
	vel  core.Vec
}

// NewProjectile creates a projectile at pos moving by vel every tick.
func NewProjectile(kind ProjectileKind, pos, vel core.Vec) *Projectile {
	return &Projectile{kind: kind, pos: pos, vel: vel}
}

func (p *Projectile) Pos() core.Vec      { return p.pos }
func (p *Projectile) Size() core.Vec     { return p.kind.Size() }
func (p *Projectile) Velocity() core.Vec { return p.vel }

func (p *Projectile) Caps() engine.Capability {
	if p.kind == MagicBolt {
		return engine.CapHazard | engine.CapTransform
	}
	return engine.CapHazard
}

func (p *Projectile) Sprite() engine.SpriteID {
	family := FamilyEyeball
	if p.kind == MagicBolt {
		family = FamilyBolt
	}
	if p.vel.X < 0 {
		return spriteID(family, "Left")
	}
	return spriteID(family, "Right")
}

func (p *Projectile) Update(w engine.World) {
	p.pos = p.pos.Add(p.vel)
	if outOfWorld(engine.Bounds(p), w.Size()) {
		w.Kill(p)
	}
}
