package actors

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/engine"
)

// ErrInvalidTerrain is returned for terrain with a non-positive size.
var ErrInvalidTerrain = errors.New("invalid terrain")

// Terrain is static level geometry. It never moves and has no visual of its
// own; the renderer draws it from its capabilities.
type Terrain struct {
	box  core.Box
	caps engine.Capability
}

func newTerrain(box core.Box, caps engine.Capability) (*Terrain, error) {
	if box.W <= 0 || box.H <= 0 {
		return nil, fmt.Errorf("%w: size %.0fx%.0f", ErrInvalidTerrain, box.W, box.H)
	}
	return &Terrain{box: box, caps: caps}, nil
}

// NewGround creates walkable floor. Torches burst into flames on it.
func NewGround(box core.Box) (*Terrain, error) {
	return newTerrain(box, engine.CapSolid|engine.CapJumpable|engine.CapGround)
}

// NewSolid creates a block that stops movement from every side.
func NewSolid(box core.Box) (*Terrain, error) {
	return newTerrain(box, engine.CapSolid|engine.CapJumpable)
}

// NewPlatform creates a one-way platform that only holds from above.
func NewPlatform(box core.Box) (*Terrain, error) {
	return newTerrain(box, engine.CapPlatform|engine.CapJumpable)
}

// NewLadder creates a climbable area.
func NewLadder(box core.Box) (*Terrain, error) {
	return newTerrain(box, engine.CapLadder)
}

// NewWinArea creates the goal of a level.
func NewWinArea(box core.Box) (*Terrain, error) {
	return newTerrain(box, engine.CapWinArea)
}

func (t *Terrain) Pos() core.Vec           { return t.box.Pos() }
func (t *Terrain) Size() core.Vec          { return t.box.Size() }
func (t *Terrain) Caps() engine.Capability { return t.caps }
func (t *Terrain) Sprite() engine.SpriteID { return engine.NoSprite }
func (t *Terrain) Update(engine.World)     {}
