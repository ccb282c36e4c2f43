package actors

import (
	"fmt"

	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/engine"
)

// KnightState is the animation state of the knight.
type KnightState int

const (
	KnightIdle KnightState = iota
	KnightRunning1
	KnightRunning2
	KnightRunning3
	KnightRunning4
	KnightJumpUp
	KnightJumpDown
	KnightClimbing
	KnightHurt
	KnightDead1
	KnightDead2
	KnightDead3
	KnightDead4
	KnightDead5
	KnightWon
	KnightFrog1
	KnightFrog2
	KnightFrog3
	KnightFrog4
)

var knightStateNames = [...]string{
	KnightIdle:     "Idle",
	KnightRunning1: "Running1",
	KnightRunning2: "Running2",
	KnightRunning3: "Running3",
	KnightRunning4: "Running4",
	KnightJumpUp:   "JumpUp",
	KnightJumpDown: "JumpDown",
	KnightClimbing: "Climbing",
	KnightHurt:     "Hurt",
	KnightDead1:    "Dead1",
	KnightDead2:    "Dead2",
	KnightDead3:    "Dead3",
	KnightDead4:    "Dead4",
	KnightDead5:    "Dead5",
	KnightWon:      "Won",
	KnightFrog1:    "FrogWalk1",
	KnightFrog2:    "FrogWalk2",
	KnightFrog3:    "FrogWalk3",
	KnightFrog4:    "FrogWalk4",
}

func (s KnightState) String() string {
	if s >= 0 && int(s) < len(knightStateNames) {
		return knightStateNames[s]
	}
	return fmt.Sprintf("KnightState(%d)", int(s))
}

// Running reports whether s is one of the running frames.
func (s KnightState) Running() bool {
	return s >= KnightRunning1 && s <= KnightRunning4
}

// Dying reports whether s belongs to the death sequence.
func (s KnightState) Dying() bool {
	return s >= KnightDead1 && s <= KnightDead5
}

// hasBareFrame lists the states drawn differently without armour.
func (s KnightState) hasBareFrame() bool {
	return s == KnightIdle || s.Running() || s == KnightJumpUp || s == KnightJumpDown || s == KnightClimbing
}

// Body sizes by form. The collision box does not follow the animation frame,
// so landing and falling frames of different heights never shift the knight
// against the surface it stands on.
var (
	armouredBody = core.V(20, 31)
	bareBody     = core.V(20, 29)
	frogBody     = core.V(20, 25)
)

// chooseState picks the animation frame for this tick. Earlier rules win:
// won, dying, frog, hurt, climbing, airborne, then running or idle.
func (k *Knight) chooseState(w engine.World, grounded bool) {
	in := w.Input()
	count := w.Count()
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)

	k.state = KnightIdle
	if (left || right) && !(left && right) {
		k.state = KnightRunning1 + KnightState((count/3)%4)
	}

	switch {
	case k.won:
		k.state = KnightWon
	case k.dead:
		k.state = k.deathFrame(count)
	case k.frog && k.frogLeft > 0:
		if left || right {
			k.state = KnightFrog1 + KnightState((count/5)%4)
		} else {
			k.state = KnightFrog4
		}
	case !k.armoured && k.iframes > 0:
		k.state = KnightHurt
	case k.grabbing:
		k.state = KnightClimbing
		k.climbFrame = Right
		if (in.Has(core.ActionUp) || in.Has(core.ActionDown)) && (count/4)%2 == 1 {
			k.climbFrame = Left
		}
	case !grounded && k.body.DY > 0:
		k.state = KnightJumpDown
	case !grounded && k.body.DY < 0:
		k.state = KnightJumpUp
	}
}

// deathFrame splits the dying countdown into six windows. The first one
// flickers between the hurt and first dead frame.
func (k *Knight) deathFrame(count int) KnightState {
	window := float64(k.cfg.DyingTicks) / 6
	remaining := float64(k.dying)

	switch {
	case remaining > 5*window:
		flicker := window / 6
		if flicker <= 0 || int(float64(count)/flicker)%2 == 0 {
			return KnightHurt
		}
		return KnightDead1
	case remaining > 4*window:
		return KnightDead2
	case remaining > 3*window:
		return KnightDead3
	case remaining > 2*window:
		return KnightDead4
	default:
		return KnightDead5
	}
}
