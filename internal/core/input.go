package core

// Action represents a semantic input symbol, abstracted from physical keys.
// The simulation only ever sees the set of actions held during a tick.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - run left
	ActionRight          // D, Right arrow - run right
	ActionUp             // W, Up arrow - climb ladder, menu up
	ActionDown           // S, Down arrow - descend ladder, menu down
	ActionJump           // Space, Alt
	ActionAttack         // F, Ctrl - throw torch
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - restart after the run ends
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionJump:    "Jump",
	ActionAttack:  "Attack",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ParseAction resolves a name produced by String back to its action.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return ActionNone, false
}

// InputFrame is the set of actions held during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame holding the given actions.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
