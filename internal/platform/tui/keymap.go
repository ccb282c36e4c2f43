package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-goblins/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case " ", "k":
		return core.ActionJump, false
	case "f", "j", "ctrl+f":
		return core.ActionAttack, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// HeldKeys turns key presses into the set of actions held each tick.
// Terminals report presses only, so a movement action stays held for a
// number of ticks after its last press; key autorepeat keeps it alive.
// Other actions last for the next tick only.
type HeldKeys struct {
	hold  int
	ticks map[core.Action]int
	once  map[core.Action]bool
}

// NewHeldKeys creates a tracker holding movement for hold ticks.
func NewHeldKeys(hold int) *HeldKeys {
	if hold < 1 {
		hold = 1
	}
	return &HeldKeys{
		hold:  hold,
		ticks: make(map[core.Action]int),
		once:  make(map[core.Action]bool),
	}
}

func holdable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown,
		core.ActionJump, core.ActionAttack:
		return true
	}
	return false
}

// opposite returns the action a press of a cancels.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
}

// Press records a key press.
func (h *HeldKeys) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !holdable(a) {
		h.once[a] = true
		return
	}
	delete(h.ticks, opposite(a))
	h.ticks[a] = h.hold
}

// Frame returns the actions held for the next tick and ages the presses.
func (h *HeldKeys) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, left := range h.ticks {
		frame.Set(a)
		if left <= 1 {
			delete(h.ticks, a)
		} else {
			h.ticks[a] = left - 1
		}
	}
	for a := range h.once {
		frame.Set(a)
		delete(h.once, a)
	}
	return frame
}

// Release drops every held action.
func (h *HeldKeys) Release() {
	clear(h.ticks)
	clear(h.once)
}
