package game

import (
	"math"

	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/engine"
)

// View is the camera: a window of world pixels that follows the hero.
type View struct {
	X, Y float64
	W, H float64
}

// Follow centres the view on target and keeps it inside the world. A world
// smaller than the view pins it to the top-left corner.
func (v *View) Follow(target engine.Entity, world core.Vec) {
	if target != nil {
		c := engine.CenterOf(target)
		v.X, v.Y = c.X-v.W/2, c.Y-v.H/2
	}
	v.X = core.ClampF(v.X, 0, world.X-v.W)
	v.Y = core.ClampF(v.Y, 0, world.Y-v.H)
}

// Cells converts a world box to the cell rectangle it covers on a grid of
// cellW x cellH pixels, relative to the view. Every box covers at least one
// cell.
func (v View) Cells(b core.Box, cellW, cellH float64) core.Rect {
	x0 := int(math.Floor((b.X - v.X) / cellW))
	y0 := int(math.Floor((b.Y - v.Y) / cellH))
	x1 := int(math.Ceil((b.Right() - v.X) / cellW))
	y1 := int(math.Ceil((b.Bottom() - v.Y) / cellH))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}
