// Package core provides fundamental types and utilities shared by the
// simulation and the terminal platform. It has no external dependencies so
// that game logic stays pure and testable.
package core

import "math"

// Vec is a point or extent in world pixels.
type Vec struct {
	X, Y float64
}

// V is shorthand for building a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Polar builds a vector of the given length pointing at angle radians.
func Polar(length, angle float64) Vec {
	return Vec{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}

// Box is an axis-aligned bounding box anchored at its top-left corner,
// with y growing downward.
type Box struct {
	X, Y float64
	W, H float64
}

// BoxAt builds a box from a position and a size.
func BoxAt(pos, size Vec) Box {
	return Box{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// Pos returns the top-left corner.
func (b Box) Pos() Vec {
	return Vec{X: b.X, Y: b.Y}
}

// Size returns the extent.
func (b Box) Size() Vec {
	return Vec{X: b.W, Y: b.H}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() Vec {
	return Vec{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Offset returns the box moved by d.
func (b Box) Offset(d Vec) Box {
	b.X += d.X
	b.Y += d.Y
	return b
}

// Contains reports whether p lies inside the box, edges included.
func (b Box) Contains(p Vec) bool {
	return p.X >= b.X && p.X <= b.Right() && p.Y >= b.Y && p.Y <= b.Bottom()
}

// Intersects reports strict overlap: boxes that only share an edge do not intersect.
func (b Box) Intersects(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// Touches reports overlap with edges included, so a box resting exactly on
// top of another still touches it. Collision queries use this test.
func (b Box) Touches(o Box) bool {
	return o.Y <= b.Bottom() && b.Y <= o.Bottom() &&
		o.X <= b.Right() && b.X <= o.Right()
}

// Center returns the center of an entity with the given position and size.
func Center(pos, size Vec) Vec {
	return Vec{X: pos.X + size.X/2, Y: pos.Y + size.Y/2}
}

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
// When max < min the result is min.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
