package engine

import "github.com/vovakirdan/tui-goblins/internal/core"

// Body is the mutable kinematic state of a moving entity.
type Body struct {
	X, Y   float64
	W, H   float64
	DX, DY float64
}

// Box returns the collision box of the body.
func (b *Body) Box() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Pos returns the top-left corner of the body.
func (b *Body) Pos() core.Vec {
	return core.V(b.X, b.Y)
}

// Integrate applies the current velocity to the position.
func (b *Body) Integrate() {
	b.X += b.DX
	b.Y += b.DY
}

// Fall accelerates the body downward, capped at maxDY.
func (b *Body) Fall(gravity, maxDY float64) {
	b.DY = min(b.DY+gravity, maxDY)
}

// ClampTo keeps the body inside a world of the given size.
func (b *Body) ClampTo(world core.Vec) {
	b.X = core.ClampF(b.X, 0, world.X-b.W)
	b.Y = core.ClampF(b.Y, 0, world.Y-b.H)
}

// Contact tells which side of an obstacle a resolution snapped the body to.
type Contact int

const (
	ContactNone   Contact = iota
	ContactTop            // landed on the obstacle
	ContactBottom         // bumped its underside
	ContactLeft           // pushed back to its left side
	ContactRight          // pushed back to its right side
)

func (c Contact) String() string {
	switch c {
	case ContactTop:
		return "Top"
	case ContactBottom:
		return "Bottom"
	case ContactLeft:
		return "Left"
	case ContactRight:
		return "Right"
	default:
		return "None"
	}
}

// ResolveSolid pushes b out of a solid obstacle. Branches are tried in the
// fixed order top, bottom, left, right and only the first match applies.
// landingOffset biases the top test so a body whose upper half is above the
// obstacle's top lands on it rather than being pushed sideways.
func ResolveSolid(b *Body, o core.Box, landingOffset float64) Contact {
	switch {
	case landingOffset+b.Y+b.H/2 < o.Y && b.DY >= 0:
		b.Y = o.Y - b.H
		b.DY = 0
		return ContactTop
	case b.Y+b.H > o.Bottom() && b.DY < 0:
		b.Y = o.Bottom()
		b.DY = 0
		return ContactBottom
	case b.X < o.X && b.DX >= 0:
		b.X = o.X - b.W
		b.DX = 0
		return ContactLeft
	case b.X+b.W > o.Right() && b.DX < 0:
		b.X = o.Right()
		b.DX = 0
		return ContactRight
	}
	return ContactNone
}

// ResolvePlatform lands b on a one-way platform. Bodies moving up or holding
// a ladder pass through.
func ResolvePlatform(b *Body, o core.Box, grabbing bool) Contact {
	if grabbing {
		return ContactNone
	}
	if b.Y < o.Y && b.DY >= 0 {
		b.Y = o.Y - b.H
		b.DY = 0
		return ContactTop
	}
	return ContactNone
}

// SettleOnGround is the lenient landing used by walking enemies: any
// downward-moving body whose bottom reaches within a pixel of the top snaps
// onto it.
func SettleOnGround(b *Body, o core.Box) bool {
	if b.Y+b.H+1 > o.Y && b.DY >= 0 {
		b.Y = o.Y - b.H
		b.DY = 0
		return true
	}
	return false
}
