package actors

import (
	"github.com/vovakirdan/tui-goblins/internal/config"
	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/engine"
)

var flameFrames = [2]core.Vec{core.V(23, 23), core.V(32, 32)}

// Flame is the fire a torch leaves on the ground. It stays bottom-centred
// on its anchor, destroys every enemy it touches and burns out after its
// lifetime.
type Flame struct {
	cfg    config.FlameConfig
	anchor core.Vec
	box    core.Box
	life   int
	frame  int
}

// NewFlame lights a flame whose bottom centre sits on anchor.
func NewFlame(anchor core.Vec, cfg config.FlameConfig) *Flame {
	f := &Flame{cfg: cfg, anchor: anchor, life: cfg.Lifetime}
	f.place()
	return f
}

func (f *Flame) Pos() core.Vec           { return f.box.Pos() }
func (f *Flame) Size() core.Vec          { return f.box.Size() }
func (f *Flame) Caps() engine.Capability { return engine.CapWeapon }

func (f *Flame) Sprite() engine.SpriteID {
	if f.frame == 0 {
		return spriteID(FamilyFlame, "0")
	}
	return spriteID(FamilyFlame, "1")
}

// Life returns the ticks left before the flame goes out.
func (f *Flame) Life() int { return f.life }

// Frame returns the animation frame, 0 or 1.
func (f *Flame) Frame() int { return f.frame }

func (f *Flame) place() {
	size := flameFrames[f.frame]
	f.box = core.Box{X: f.anchor.X - size.X/2, Y: f.anchor.Y - size.Y, W: size.X, H: size.Y}
}

// Update burns whatever it touches and counts down its lifetime. The frame
// follows the world's tick counter so every flame flickers in step.
func (f *Flame) Update(w engine.World) {
	if f.cfg.FrameTicks > 0 {
		f.frame = (w.Count() / f.cfg.FrameTicks) % 2
	}
	f.place()

	for _, o := range w.Collisions(f) {
		if o.Caps().Has(engine.CapHazard) {
			w.Defeat(o)
			continue
		}
		if s, ok := o.(engine.Strikeable); ok {
			s.Strike()
		}
	}

	if f.life > 0 {
		f.life--
		return
	}
	w.Kill(f)
}
