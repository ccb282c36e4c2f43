// Package actors implements every simulated entity of the game: the knight
// controlled by the player, the enemies and their projectiles, the thrown
// torch with the fire it leaves, and the static terrain.
package actors

import (
	"math/rand"

	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/engine"
)

// Direction is a horizontal facing.
type Direction int

const (
	Right Direction = iota
	Left
)

func (d Direction) String() string {
	if d == Left {
		return "Left"
	}
	return "Right"
}

// Sign returns +1 for Right and -1 for Left.
func (d Direction) Sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

// Opposite returns the other facing.
func (d Direction) Opposite() Direction {
	if d == Left {
		return Right
	}
	return Left
}

// ParseDirection maps "left"/"Left" to Left and anything else to Right.
func ParseDirection(s string) Direction {
	if s == "left" || s == "Left" {
		return Left
	}
	return Right
}

// Target is what enemies need to know about the player to aim at it.
type Target interface {
	engine.Entity
	Dead() bool
	Won() bool
}

// findTarget returns the first live player entity, if any.
func findTarget(w engine.World) Target {
	for _, e := range w.Entities() {
		if !e.Caps().Has(engine.CapPlayer) {
			continue
		}
		if t, ok := e.(Target); ok {
			return t
		}
	}
	return nil
}

// randRange draws an integer in [r.Min, r.Max].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// outOfWorld reports whether box lies entirely outside the world.
func outOfWorld(box core.Box, world core.Vec) bool {
	return box.Right() < 0 || box.X > world.X || box.Bottom() < 0 || box.Y > world.Y
}
