package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/tui-goblins/internal/core"
)

// ErrInvalidSize is returned when an Arena is built with a non-positive size.
var ErrInvalidSize = errors.New("engine: arena size must be positive")

// Arena owns the live entity set, the frame counter, the current input
// snapshot and the random source for one simulated world.
//
// Kills are deferred: a killed entity disappears from every query right away
// but is only dropped from the live list at the start of the next tick, so
// the current update pass is never perturbed.
type Arena struct {
	size    core.Vec
	live    []Entity
	killed  map[Entity]struct{}
	input   core.InputFrame
	count   int
	defeats int
	rng     *rand.Rand
}

// Option configures an Arena at construction.
type Option func(*Arena)

// WithRand injects the random source shared by every entity.
func WithRand(rng *rand.Rand) Option {
	return func(a *Arena) {
		a.rng = rng
	}
}

// WithSeed seeds a fresh random source.
func WithSeed(seed int64) Option {
	return func(a *Arena) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

// NewArena creates an empty world of the given pixel size.
func NewArena(w, h float64, opts ...Option) (*Arena, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %vx%v", ErrInvalidSize, w, h)
	}
	a := &Arena{
		size:   core.V(w, h),
		killed: make(map[Entity]struct{}),
		input:  core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return a, nil
}

// Spawn adds e to the live set. It joins the update pass on the next tick.
func (a *Arena) Spawn(e Entity) {
	if e == nil {
		return
	}
	delete(a.killed, e)
	if slices.Contains(a.live, e) {
		return
	}
	a.live = append(a.live, e)
}

// Kill schedules e for removal. Killing an absent or already killed entity
// is a no-op.
func (a *Arena) Kill(e Entity) {
	if !slices.Contains(a.live, e) {
		return
	}
	a.killed[e] = struct{}{}
}

// Defeat kills e and counts it as a player victory.
func (a *Arena) Defeat(e Entity) {
	if !a.Alive(e) {
		return
	}
	a.Kill(e)
	a.defeats++
}

// Defeats returns how many entities the player has destroyed.
func (a *Arena) Defeats() int {
	return a.defeats
}

// KillAll schedules every live entity for removal.
func (a *Arena) KillAll() {
	for _, e := range a.live {
		a.killed[e] = struct{}{}
	}
}

// Alive reports whether e is live and not killed.
func (a *Arena) Alive(e Entity) bool {
	if _, dead := a.killed[e]; dead {
		return false
	}
	return slices.Contains(a.live, e)
}

// Collisions returns every live entity other than e whose box touches e's
// box, computed from current positions.
func (a *Arena) Collisions(e Entity) []Entity {
	box := Bounds(e)
	var hits []Entity
	for _, o := range a.live {
		if o == e {
			continue
		}
		if _, dead := a.killed[o]; dead {
			continue
		}
		if box.Touches(Bounds(o)) {
			hits = append(hits, o)
		}
	}
	return hits
}

// Entities returns the live set in spawn order.
func (a *Arena) Entities() []Entity {
	out := make([]Entity, 0, len(a.live))
	for _, e := range a.live {
		if _, dead := a.killed[e]; !dead {
			out = append(out, e)
		}
	}
	return out
}

// Tick stores in as the current input, advances the frame counter and
// updates every entity live at the start of the tick.
func (a *Arena) Tick(in core.InputFrame) {
	a.prune()
	a.input = in.Clone()
	a.count++

	snapshot := slices.Clone(a.live)
	for _, e := range snapshot {
		e.Update(a)
	}
}

func (a *Arena) prune() {
	if len(a.killed) == 0 {
		return
	}
	a.live = slices.DeleteFunc(a.live, func(e Entity) bool {
		_, dead := a.killed[e]
		return dead
	})
	clear(a.killed)
}

// Size returns the world extent in pixels.
func (a *Arena) Size() core.Vec {
	return a.size
}

// Count returns the number of ticks elapsed.
func (a *Arena) Count() int {
	return a.count
}

// Input returns the input snapshot of the current tick.
func (a *Arena) Input() core.InputFrame {
	return a.input
}

// Rand returns the random source shared by entities of this world.
func (a *Arena) Rand() *rand.Rand {
	return a.rng
}
