package actors

import (
	"github.com/vovakirdan/tui-goblins/internal/config"
	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/engine"
)

var torchFrames = [2]core.Vec{core.V(14, 13), core.V(13, 14)}

// Weapons bundles the tuning of the torch and the flame it leaves.
type Weapons struct {
	Torch config.TorchConfig
	Flame config.FlameConfig
}

// Torch is the weapon thrown by the knight. It flies in an arc, destroys the
// first enemy it touches and bursts into a flame on the ground.
type Torch struct {
	cfg   config.TorchConfig
	flame config.FlameConfig
	body  engine.Body
	anim  int
	done  bool
}

// NewTorch throws a torch from pos toward dir.
func NewTorch(dir Direction, pos core.Vec, weapons Weapons) *Torch {
	cfg := weapons.Torch
	t := &Torch{
		cfg:   cfg,
		flame: weapons.Flame,
		body: engine.Body{
			X:  pos.X,
			Y:  pos.Y,
			DX: cfg.SpeedX * dir.Sign(),
			DY: cfg.JumpImpulse,
		},
	}
	t.resize()
	return t
}

func (t *Torch) Pos() core.Vec           { return t.body.Pos() }
func (t *Torch) Size() core.Vec          { return core.V(t.body.W, t.body.H) }
func (t *Torch) Caps() engine.Capability { return engine.CapWeapon }
func (t *Torch) Velocity() core.Vec      { return core.V(t.body.DX, t.body.DY) }

func (t *Torch) Sprite() engine.SpriteID {
	if t.frame() == 0 {
		return spriteID(FamilyTorch, "0")
	}
	return spriteID(FamilyTorch, "1")
}

func (t *Torch) frame() int {
	if t.cfg.FrameTicks <= 0 {
		return 0
	}
	return (t.anim / t.cfg.FrameTicks) % 2
}

func (t *Torch) resize() {
	size := torchFrames[t.frame()]
	t.body.W, t.body.H = size.X, size.Y
}

// Update moves the torch and resolves its first relevant collision.
func (t *Torch) Update(w engine.World) {
	if t.done {
		return
	}
	t.body.Integrate()

	for _, o := range w.Collisions(t) {
		caps := o.Caps()
		switch {
		case caps.Has(engine.CapHazard):
			w.Defeat(o)
			t.finish(w)
		case caps.Any(engine.CapGround | engine.CapPlatform):
			anchor := core.V(t.body.X+t.body.W/2, o.Pos().Y)
			w.Spawn(NewFlame(anchor, t.flame))
			t.finish(w)
		case caps.Has(engine.CapSolid):
			if s, ok := o.(engine.Strikeable); ok {
				s.Strike()
			}
			t.finish(w)
		}
		if t.done {
			return
		}
	}

	if t.body.Y > w.Size().Y {
		t.finish(w)
		return
	}

	t.body.Fall(t.cfg.Gravity, t.cfg.MaxFallSpeed)
	t.anim++
	t.resize()
}

func (t *Torch) finish(w engine.World) {
	t.done = true
	w.Kill(t)
}
