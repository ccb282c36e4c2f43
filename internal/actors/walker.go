package actors

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-goblins/internal/config"
	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/engine"
)

// WalkerState is the animation state of a walker.
type WalkerState int

const (
	WalkerIdle WalkerState = iota
	WalkerSpawn1
	WalkerSpawn2
	WalkerSpawn3
	WalkerWalk1
	WalkerWalk2
	WalkerWalk3
	WalkerDespawned
)

func (s WalkerState) String() string {
	switch s {
	case WalkerSpawn1:
		return "Spawn1"
	case WalkerSpawn2:
		return "Spawn2"
	case WalkerSpawn3:
		return "Spawn3"
	case WalkerWalk1:
		return "Walk1"
	case WalkerWalk2:
		return "Walk2"
	case WalkerWalk3:
		return "Walk3"
	case WalkerDespawned:
		return "Despawned"
	default:
		return "Idle"
	}
}

var walkerSizes = map[WalkerState]core.Vec{
	WalkerSpawn1:    core.V(16, 9),
	WalkerSpawn2:    core.V(24, 12),
	WalkerSpawn3:    core.V(19, 24),
	WalkerWalk1:     core.V(22, 31),
	WalkerWalk2:     core.V(19, 32),
	WalkerWalk3:     core.V(21, 31),
	WalkerDespawned: core.V(0, 0),
}

// Walker rises out of the ground in three timed stages, walks a random
// distance in one direction, sinks back through the stages in reverse and
// disappears.
type Walker struct {
	cfg    config.WalkerConfig
	body   engine.Body
	facing Direction
	state  WalkerState

	distance   float64
	stages     [3]int
	stageStart [3]int
	walkAnim   int
	despawned  bool
}

// NewWalker creates a walker at pos heading toward dir. Its travel distance
// and stage durations are drawn from rng; tickRate converts the stage
// seconds to ticks.
func NewWalker(pos core.Vec, dir Direction, cfg config.WalkerConfig, tickRate int, rng *rand.Rand) *Walker {
	wk := &Walker{
		cfg:      cfg,
		body:     engine.Body{X: pos.X, Y: pos.Y},
		facing:   dir,
		state:    WalkerSpawn1,
		distance: float64(randRange(rng, cfg.Distance.Min, cfg.Distance.Max)),
		walkAnim: cfg.WalkCycle,
	}
	for i, r := range cfg.StageSeconds {
		wk.stages[i] = randRange(rng, r.Min, r.Max) * tickRate
	}
	wk.stageStart = wk.stages
	wk.resize()
	return wk
}

func (wk *Walker) Pos() core.Vec           { return wk.body.Pos() }
func (wk *Walker) Size() core.Vec          { return core.V(wk.body.W, wk.body.H) }
func (wk *Walker) Caps() engine.Capability { return engine.CapHazard }

// Sprite returns the frame for the current state; states without a frame of
// their own use the last walking frame.
func (wk *Walker) Sprite() engine.SpriteID {
	switch wk.state {
	case WalkerDespawned:
		return engine.NoSprite
	case WalkerIdle:
		return spriteID(FamilyWalker, WalkerWalk3.String()+wk.facing.String())
	}
	return spriteID(FamilyWalker, wk.state.String()+wk.facing.String())
}

// State returns the current animation state.
func (wk *Walker) State() WalkerState { return wk.state }

// Facing returns the walking direction.
func (wk *Walker) Facing() Direction { return wk.facing }

// Remaining returns the distance left to walk.
func (wk *Walker) Remaining() float64 { return wk.distance }

// Despawned reports whether the walker has finished sinking.
func (wk *Walker) Despawned() bool { return wk.despawned }

func (wk *Walker) resize() {
	size, ok := walkerSizes[wk.state]
	if !ok {
		size = walkerSizes[WalkerWalk3]
	}
	wk.body.W, wk.body.H = size.X, size.Y
}

// Update advances the walker by one tick.
func (wk *Walker) Update(w engine.World) {
	world := w.Size()

	if wk.distance > 0 {
		wk.rise(world)
	} else {
		wk.body.DX = 0
		wk.sink(w)
	}

	for _, o := range w.Collisions(wk) {
		caps := o.Caps()
		if caps.Any(engine.CapSolid|engine.CapPlatform) && !caps.Has(engine.CapGrave) {
			engine.SettleOnGround(&wk.body, engine.Bounds(o))
		}
	}

	wk.body.Y += wk.body.DY
	wk.body.Fall(wk.cfg.Gravity, wk.cfg.MaxFallSpeed)

	if wk.body.Y+wk.body.H > world.Y {
		w.Kill(wk)
	}
	wk.body.ClampTo(world)

	wk.chooseState()
	wk.resize()
}

// rise runs the spawn stages in order, then walks.
func (wk *Walker) rise(world core.Vec) {
	for i := range wk.stages {
		if wk.stages[i] > 0 {
			wk.stages[i]--
			return
		}
	}

	wk.body.DX = wk.cfg.Speed * wk.facing.Sign()
	before := wk.body.X
	wk.body.X = core.ClampF(wk.body.X+wk.body.DX, 0, world.X-wk.body.W)
	moved := math.Abs(wk.body.X - before)
	if moved == 0 {
		// Pinned against the world edge.
		wk.distance = 0
		return
	}
	wk.distance -= moved
}

// sink restores the stage timers in reverse order, then despawns.
func (wk *Walker) sink(w engine.World) {
	for i := len(wk.stages) - 1; i >= 0; i-- {
		if wk.stages[i] < wk.stageStart[i] {
			wk.stages[i]++
			return
		}
	}
	wk.despawned = true
	w.Kill(wk)
}

func (wk *Walker) chooseState() {
	switch {
	case wk.despawned:
		wk.state = WalkerDespawned
	case wk.body.DX != 0:
		start := float64(wk.cfg.WalkCycle)
		switch anim := float64(wk.walkAnim); {
		case anim > start*2/3:
			wk.state = WalkerWalk1
		case anim > start/3:
			wk.state = WalkerWalk2
		default:
			wk.state = WalkerWalk3
		}
		if wk.cfg.WalkCycle > 0 {
			wk.walkAnim = (wk.walkAnim - 1 + wk.cfg.WalkCycle) % wk.cfg.WalkCycle
		}
	case wk.stages[0] > 0:
		wk.state = WalkerSpawn1
	case wk.stages[1] > 0:
		wk.state = WalkerSpawn2
	case wk.stages[2] > 0:
		wk.state = WalkerSpawn3
	default:
		wk.state = WalkerIdle
	}
}
