package actors

import (
	"github.com/vovakirdan/tui-goblins/internal/config"
	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/engine"
)

// Knight is the player character. It runs, jumps, climbs ladders and
// throws torches; the first hit costs its armour, the second its life.
type Knight struct {
	cfg  config.KnightConfig
	body engine.Body

	facing     Direction
	climbFrame Direction
	state      KnightState

	armoured bool
	dead     bool
	won      bool
	frog     bool
	grabbing bool

	iframes  int
	dying    int
	frogLeft int
	cooldown int
	maxDY    float64

	weapons Weapons
}

// NewKnight creates an armoured knight standing at pos, facing right.
func NewKnight(pos core.Vec, cfg config.KnightConfig, weapons Weapons) *Knight {
	k := &Knight{
		cfg:      cfg,
		weapons:  weapons,
		body:     engine.Body{X: pos.X, Y: pos.Y},
		facing:   Right,
		armoured: true,
		dying:    cfg.DyingTicks,
		frogLeft: cfg.FrogTicks,
		maxDY:    cfg.MaxFallSpeed,
	}
	k.resize()
	return k
}

func (k *Knight) Pos() core.Vec { return k.body.Pos() }

// Size returns the body box, which depends on the form and armour only.
func (k *Knight) Size() core.Vec { return core.V(k.body.W, k.body.H) }

func (k *Knight) Caps() engine.Capability { return engine.CapPlayer }

// Sprite returns the animation frame. While invincible and alive the
// knight blinks by skipping every other frame.
func (k *Knight) Sprite() engine.SpriteID {
	if !k.dead && k.iframes > 0 && k.iframes%2 == 0 {
		return engine.NoSprite
	}
	facing := k.facing
	if k.state == KnightClimbing {
		facing = k.climbFrame
	}
	frame := k.state.String() + facing.String()
	if !k.armoured && k.state.hasBareFrame() {
		frame += "Bare"
	}
	return spriteID(FamilyKnight, frame)
}

// State returns the current animation state.
func (k *Knight) State() KnightState { return k.state }

// Facing returns the direction the knight looks at.
func (k *Knight) Facing() Direction { return k.facing }

// Velocity returns the current per-tick displacement.
func (k *Knight) Velocity() core.Vec { return core.V(k.body.DX, k.body.DY) }

func (k *Knight) Dead() bool       { return k.dead }
func (k *Knight) Won() bool        { return k.won }
func (k *Knight) Armoured() bool   { return k.armoured }
func (k *Knight) Frog() bool       { return k.frog }
func (k *Knight) Climbing() bool   { return k.grabbing }
func (k *Knight) Invincible() bool { return k.iframes > 0 }

// Finished reports whether the death sequence has run its course.
func (k *Knight) Finished() bool { return k.dead && k.dying == 0 }

func (k *Knight) resize() {
	size := armouredBody
	switch {
	case k.frog:
		size = frogBody
	case !k.armoured:
		size = bareBody
	}
	k.body.W, k.body.H = size.X, size.Y
}

// Update advances the knight by one tick.
func (k *Knight) Update(w engine.World) {
	in := w.Input()
	k.body.DX = 0
	k.resize()

	if k.dead {
		if k.dying == 0 {
			w.Kill(k)
		} else {
			k.dying--
		}
	}

	if k.cooldown == 0 {
		if in.Has(core.ActionAttack) && k.iframes == 0 && !k.dead && !k.frog {
			k.throwTorch(w)
			k.cooldown = k.cfg.AttackCooldown
		}
	} else {
		k.cooldown--
	}

	if !k.dead && !k.won {
		left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
		switch {
		case left && right:
			k.facing = Right
		case left:
			k.body.DX = -k.cfg.Speed
			k.facing = Left
		case right:
			k.body.DX = k.cfg.Speed
			k.facing = Right
		}
	}

	if ladder := k.ladder(w); ladder != nil && !k.frog {
		k.climb(in, ladder)
	} else {
		k.grabbing = false
	}

	for _, o := range w.Collisions(k) {
		caps := o.Caps()
		switch {
		case caps.Has(engine.CapSolid):
			if engine.ResolveSolid(&k.body, engine.Bounds(o), k.cfg.LandingOffset) == engine.ContactTop {
				k.land(in)
			}
		case caps.Has(engine.CapPlatform):
			if engine.ResolvePlatform(&k.body, engine.Bounds(o), k.grabbing) == engine.ContactTop {
				k.land(in)
			}
		case caps.Has(engine.CapHazard):
			k.Hurt(o)
		case caps.Has(engine.CapWinArea):
			k.won = true
		}
	}
	k.resize()

	k.body.Integrate()

	world := w.Size()
	if k.body.Y+k.body.H > world.Y {
		k.instantDie()
	}
	k.body.ClampTo(world)

	k.chooseState(w, k.grounded(w))

	k.body.Fall(k.cfg.Gravity, k.maxDY)

	if k.iframes > 0 {
		k.iframes--
	}

	if k.frog && k.frogLeft > 0 {
		k.frogLeft--
		k.maxDY = k.cfg.FrogMaxFallSpeed
	} else {
		k.frog = false
		k.frogLeft = k.cfg.FrogTicks
		k.maxDY = k.cfg.MaxFallSpeed
	}
	if k.dead {
		k.maxDY = k.cfg.DeadMaxFallSpeed
	}
}

// land is called after snapping onto a jumpable surface.
func (k *Knight) land(in core.InputFrame) {
	if !k.dead && !k.grabbing && in.Has(core.ActionJump) {
		k.body.DY = k.cfg.JumpImpulse
	}
}

// grounded reports whether the knight rests on a jumpable surface.
func (k *Knight) grounded(w engine.World) bool {
	for _, o := range w.Collisions(k) {
		if o.Caps().Has(engine.CapJumpable) && k.body.Y < o.Pos().Y && k.body.DY >= 0 {
			return true
		}
	}
	return false
}

func (k *Knight) ladder(w engine.World) engine.Entity {
	for _, o := range w.Collisions(k) {
		if o.Caps().Has(engine.CapLadder) {
			return o
		}
	}
	return nil
}

// climb grabs or releases the ladder and moves along it.
func (k *Knight) climb(in core.InputFrame, ladder engine.Entity) {
	if k.dead || k.won {
		return
	}
	up, down := in.Has(core.ActionUp), in.Has(core.ActionDown)
	if in.Has(core.ActionJump) || in.Has(core.ActionLeft) || in.Has(core.ActionRight) {
		k.grabbing = false
	}
	if up || down {
		k.grabbing = true
	}
	if !k.grabbing {
		return
	}

	lb := engine.Bounds(ladder)
	k.body.X = lb.X + lb.W/2 - k.body.W/2
	k.body.DY = 0
	if down {
		k.body.DY += k.cfg.ClimbSpeed
	}
	if up {
		k.body.DY -= k.cfg.ClimbSpeed
	}
}

func (k *Knight) throwTorch(w engine.World) {
	if k.grabbing || k.won {
		return
	}
	w.Spawn(NewTorch(k.facing, core.Center(k.Pos(), k.Size()), k.weapons))
}

// Hurt applies a hit from source. Hits are ignored while invincible, dead or
// victorious. A transforming source turns the knight into a frog instead of
// costing armour or life. A nil source is an environmental hit.
func (k *Knight) Hurt(source engine.Entity) {
	if k.iframes > 0 || k.dead || k.won {
		return
	}

	k.body.DX = -k.cfg.KnockbackX * k.facing.Sign()
	k.body.DY = k.cfg.KnockbackY
	k.frog = false

	switch {
	case source != nil && source.Caps().Has(engine.CapTransform):
		k.frog = true
	case k.armoured:
		k.armoured = false
	default:
		k.dead = true
		k.maxDY = k.cfg.DeadMaxFallSpeed
	}

	k.iframes = k.cfg.Invincibility
}

// instantDie kills the knight regardless of armour and invincibility.
func (k *Knight) instantDie() {
	k.armoured = false
	k.iframes = 0
	k.Hurt(nil)
}
