package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-goblins/internal/core"
)

// probe is a minimal entity that records the ticks it was updated on and
// runs an optional hook during its update.
type probe struct {
	box     core.Box
	caps    Capability
	updates []int
	hook    func(w World)
}

func newProbe(x, y, w, h float64) *probe {
	return &probe{box: core.Box{X: x, Y: y, W: w, H: h}}
}

func (p *probe) Pos() core.Vec    { return p.box.Pos() }
func (p *probe) Size() core.Vec   { return p.box.Size() }
func (p *probe) Sprite() SpriteID { return "probe" }
func (p *probe) Caps() Capability { return p.caps }
func (p *probe) Update(w World) {
	p.updates = append(p.updates, w.Count())
	if p.hook != nil {
		p.hook(w)
	}
}

func newArena(t *testing.T) *Arena {
	t.Helper()
	a, err := NewArena(500, 240, WithSeed(7))
	require.NoError(t, err)
	return a
}

func TestNewArenaRejectsBadSize(t *testing.T) {
	for _, size := range [][2]float64{{0, 240}, {500, 0}, {-1, 10}} {
		_, err := NewArena(size[0], size[1])
		require.ErrorIs(t, err, ErrInvalidSize, "size %v", size)
	}
}

func TestArenaSpawnAndEntities(t *testing.T) {
	a := newArena(t)
	p1, p2 := newProbe(0, 0, 10, 10), newProbe(50, 0, 10, 10)

	a.Spawn(p1)
	a.Spawn(p2)
	a.Spawn(p1)

	assert.Equal(t, []Entity{p1, p2}, a.Entities())
	assert.Equal(t, core.V(500, 240), a.Size())
	assert.Equal(t, 0, a.Count())
}

func TestArenaKillIsImmediateForQueries(t *testing.T) {
	a := newArena(t)
	p1, p2 := newProbe(0, 0, 10, 10), newProbe(5, 5, 10, 10)
	a.Spawn(p1)
	a.Spawn(p2)

	require.Equal(t, []Entity{p2}, a.Collisions(p1))

	a.Kill(p2)
	assert.Empty(t, a.Collisions(p1))
	assert.Equal(t, []Entity{p1}, a.Entities())
	assert.False(t, a.Alive(p2))

	// Killing twice, or killing a stranger, changes nothing.
	a.Kill(p2)
	a.Kill(newProbe(0, 0, 1, 1))
	assert.Equal(t, []Entity{p1}, a.Entities())
}

func TestArenaTickUsesStartOfTickSnapshot(t *testing.T) {
	a := newArena(t)
	victim := newProbe(100, 0, 10, 10)
	var spawned *probe
	killer := newProbe(0, 0, 10, 10)
	killer.hook = func(w World) {
		if w.Count() == 1 {
			w.Kill(victim)
			spawned = newProbe(200, 0, 10, 10)
			w.Spawn(spawned)
		}
	}
	a.Spawn(killer)
	a.Spawn(victim)

	a.Tick(core.NewInputFrame())

	// The victim was live at tick start so it still updates this tick,
	// while the newcomer waits for the next one.
	assert.Equal(t, []int{1}, victim.updates)
	assert.Empty(t, spawned.updates)

	a.Tick(core.NewInputFrame())

	assert.Equal(t, []int{1}, victim.updates, "killed entity must not update again")
	assert.Equal(t, []int{2}, spawned.updates)
	assert.Equal(t, []Entity{killer, spawned}, a.Entities())
}

func TestArenaTickStoresInputAndCounts(t *testing.T) {
	a := newArena(t)
	var seen []bool
	p := newProbe(0, 0, 1, 1)
	p.hook = func(w World) {
		seen = append(seen, w.Input().Has(core.ActionJump))
	}
	a.Spawn(p)

	in := core.FrameOf(core.ActionJump)
	a.Tick(in)
	in.Clear()
	a.Tick(core.NewInputFrame())

	assert.Equal(t, []bool{true, false}, seen)
	assert.Equal(t, 2, a.Count())
}

func TestArenaCollisionsIncludeTouchingEdges(t *testing.T) {
	a := newArena(t)
	hero := newProbe(678, 91, 20, 31)
	platform := newProbe(622, 122, 100, 20)
	far := newProbe(0, 0, 10, 10)
	a.Spawn(hero)
	a.Spawn(platform)
	a.Spawn(far)

	assert.Equal(t, []Entity{platform}, a.Collisions(hero))
	assert.Equal(t, []Entity{hero}, a.Collisions(platform))
}

func TestArenaDefeatCountsOnce(t *testing.T) {
	a := newArena(t)
	p := newProbe(0, 0, 1, 1)
	a.Spawn(p)

	a.Defeat(p)
	a.Defeat(p)

	assert.Equal(t, 1, a.Defeats())
	assert.False(t, a.Alive(p))
}

func TestArenaKillAll(t *testing.T) {
	a := newArena(t)
	a.Spawn(newProbe(0, 0, 1, 1))
	a.Spawn(newProbe(5, 5, 1, 1))

	a.KillAll()
	assert.Empty(t, a.Entities())

	a.Tick(core.NewInputFrame())
	assert.Empty(t, a.Entities())
}

func TestArenaSeededRandIsDeterministic(t *testing.T) {
	a1, err := NewArena(10, 10, WithSeed(42))
	require.NoError(t, err)
	a2, err := NewArena(10, 10, WithSeed(42))
	require.NoError(t, err)

	for range 10 {
		assert.Equal(t, a1.Rand().Intn(1000), a2.Rand().Intn(1000))
	}
}

func TestCapabilityHas(t *testing.T) {
	grave := CapSolid | CapJumpable | CapGrave

	assert.True(t, grave.Has(CapSolid))
	assert.True(t, grave.Has(CapSolid|CapGrave))
	assert.False(t, grave.Has(CapSolid|CapGround))
	assert.True(t, grave.Any(CapGround|CapGrave))
	assert.False(t, grave.Any(CapHazard|CapPlatform))
}
