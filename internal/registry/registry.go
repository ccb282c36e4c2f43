// Package registry keeps the playable levels known to the front-ends.
// Level packages register a factory in init(), so the CLI, the menu and the
// SSH server can list and start levels without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-goblins/internal/core"
)

// Game is what a front-end drives: a fixed-tick simulation that draws
// itself into a Screen. Implementations hold no terminal state.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// score table key.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new run sized and seeded by cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances the run by one tick with the held actions in.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current run into dst, which the caller has cleared.
	Render(dst *core.Screen)

	// State reports score, lives and whether the run has ended.
	State() core.GameState
}

// Resizable is implemented by games that can follow a terminal resize
// without restarting the run.
type Resizable interface {
	Resize(screenW, screenH int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under id. It panics on a duplicate id, which can
// only come from two packages claiming the same level.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered game sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(factories))
	for id := range factories {
		out = append(out, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
