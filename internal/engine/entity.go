// Package engine holds the tick-based simulation container: the Arena, the
// contract every simulated entity satisfies, capability tags used for
// collision dispatch, and the shared collision resolution strategies.
package engine

import (
	"math/rand"

	"github.com/vovakirdan/tui-goblins/internal/core"
)

// Capability is a bitset of behavioral tags. Collision handlers dispatch on
// tags instead of concrete types.
type Capability uint16

const (
	CapPlayer    Capability = 1 << iota // the controllable hero
	CapHazard                           // hurts the player on contact; weapons destroy it
	CapTransform                        // hazard that transforms the player instead of hurting
	CapSolid                            // blocks movement from every side
	CapPlatform                         // blocks movement from above only
	CapJumpable                         // standing on it allows jumping
	CapGround                           // floor surface; torches burst into flames on it
	CapGrave                            // solid that walkers ignore and weapons strike
	CapLadder                           // climbable
	CapWinArea                          // reaching it wins the level
	CapWeapon                           // player-thrown projectile or its effect
)

// Has reports whether every bit of o is set in c.
func (c Capability) Has(o Capability) bool {
	return c&o == o
}

// Any reports whether at least one bit of o is set in c.
func (c Capability) Any(o Capability) bool {
	return c&o != 0
}

// SpriteID is an opaque token the renderer resolves to an image region.
type SpriteID string

// NoSprite marks an entity with no visual, such as background geometry.
const NoSprite SpriteID = ""

// Entity is anything the Arena simulates.
type Entity interface {
	// Pos returns the top-left corner of the collision box.
	Pos() core.Vec
	// Size returns the extent of the collision box. It may change with state.
	Size() core.Vec
	// Sprite returns the current visual, or NoSprite.
	Sprite() SpriteID
	// Caps returns the capability tags used by collision handlers.
	Caps() Capability
	// Update advances the entity by one tick.
	Update(w World)
}

// Strikeable is implemented by entities that react to weapon hits without
// being destroyed by them.
type Strikeable interface {
	Strike()
}

// World is the view of the Arena an entity receives during Update.
type World interface {
	Spawn(e Entity)
	Kill(e Entity)
	// Defeat removes e and credits the removal to the player.
	Defeat(e Entity)
	Collisions(e Entity) []Entity
	Entities() []Entity
	Input() core.InputFrame
	Count() int
	Size() core.Vec
	Rand() *rand.Rand
}

// Bounds returns the collision box of e.
func Bounds(e Entity) core.Box {
	return core.BoxAt(e.Pos(), e.Size())
}

// CenterOf returns the center of the collision box of e.
func CenterOf(e Entity) core.Vec {
	return core.Center(e.Pos(), e.Size())
}
