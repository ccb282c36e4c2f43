package actors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-goblins/internal/config"
	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/engine"
)

// spike is a static entity with configurable capabilities.
type spike struct {
	box  core.Box
	caps engine.Capability
}

func newSpike(x, y, w, h float64) *spike {
	return &spike{box: core.Box{X: x, Y: y, W: w, H: h}, caps: engine.CapHazard}
}

func (s *spike) Pos() core.Vec           { return s.box.Pos() }
func (s *spike) Size() core.Vec          { return s.box.Size() }
func (s *spike) Sprite() engine.SpriteID { return engine.NoSprite }
func (s *spike) Caps() engine.Capability { return s.caps }
func (s *spike) Update(engine.World)     {}

// dummy is a stationary player stand-in for aiming tests.
type dummy struct {
	pos  core.Vec
	dead bool
	won  bool
}

func (d *dummy) Pos() core.Vec           { return d.pos }
func (d *dummy) Size() core.Vec          { return armouredBody }
func (d *dummy) Sprite() engine.SpriteID { return engine.NoSprite }
func (d *dummy) Caps() engine.Capability { return engine.CapPlayer }
func (d *dummy) Update(engine.World)     {}
func (d *dummy) Dead() bool              { return d.dead }
func (d *dummy) Won() bool               { return d.won }

func defaults() config.GoblinsConfig {
	return config.DefaultGoblinsConfig()
}

func weapons() Weapons {
	cfg := defaults()
	return Weapons{Torch: cfg.Torch, Flame: cfg.Flame}
}

func newTestArena(t *testing.T, w, h float64) *engine.Arena {
	t.Helper()
	a, err := engine.NewArena(w, h, engine.WithSeed(1))
	require.NoError(t, err)
	return a
}

func spawnTerrain(t *testing.T, a *engine.Arena, ctor func(core.Box) (*Terrain, error), x, y, w, h float64) *Terrain {
	t.Helper()
	tr, err := ctor(core.Box{X: x, Y: y, W: w, H: h})
	require.NoError(t, err)
	a.Spawn(tr)
	return tr
}

func run(a *engine.Arena, ticks int, actions ...core.Action) {
	for range ticks {
		a.Tick(core.FrameOf(actions...))
	}
}

func countOf[T engine.Entity](a *engine.Arena) int {
	n := 0
	for _, e := range a.Entities() {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

func TestDirection(t *testing.T) {
	assert.Equal(t, 1.0, Right.Sign())
	assert.Equal(t, -1.0, Left.Sign())
	assert.Equal(t, Left, Right.Opposite())
	assert.Equal(t, Left, ParseDirection("left"))
	assert.Equal(t, Right, ParseDirection("right"))
	assert.Equal(t, Right, ParseDirection(""))
}

func TestTerrainCapabilities(t *testing.T) {
	box := core.Box{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		ctor func(core.Box) (*Terrain, error)
		caps engine.Capability
	}{
		{"ground", NewGround, engine.CapSolid | engine.CapJumpable | engine.CapGround},
		{"solid", NewSolid, engine.CapSolid | engine.CapJumpable},
		{"platform", NewPlatform, engine.CapPlatform | engine.CapJumpable},
		{"ladder", NewLadder, engine.CapLadder},
		{"win area", NewWinArea, engine.CapWinArea},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := tt.ctor(box)
			require.NoError(t, err)
			assert.Equal(t, tt.caps, tr.Caps())
			assert.Equal(t, engine.NoSprite, tr.Sprite())

			_, err = tt.ctor(core.Box{W: 0, H: 10})
			assert.ErrorIs(t, err, ErrInvalidTerrain)
		})
	}
}

func TestLookupRegion(t *testing.T) {
	r, ok := LookupRegion(spriteID(FamilyKnight, "IdleRight"))
	require.True(t, ok)
	assert.Equal(t, Region{X: 134, Y: 609, W: 20, H: 31}, r)

	bare, ok := LookupRegion(spriteID(FamilyKnight, "IdleRightBare"))
	require.True(t, ok)
	assert.Equal(t, Region{X: 134, Y: 609 + bareOffset, W: 20, H: 29}, bare)

	fallback, ok := LookupRegion(spriteID(FamilyWalker, "Missing"))
	assert.False(t, ok)
	assert.Equal(t, sheet[spriteID(FamilyWalker, "Walk3Right")], fallback)

	unknown, ok := LookupRegion("nobody/frame")
	assert.False(t, ok)
	assert.Equal(t, r, unknown)

	assert.Equal(t, FamilyTorch, Family(spriteID(FamilyTorch, "0")))
}
