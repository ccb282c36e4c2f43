package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-goblins/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{runeKey('a'), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{runeKey('w'), core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{runeKey(' '), core.ActionJump, false},
		{runeKey('f'), core.ActionAttack, false},
		{runeKey('p'), core.ActionPause, false},
		{runeKey('r'), core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('x'), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(runeKey('k')))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(runeKey('b')))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runeKey('q')))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey('z')))
}

func TestHeldKeysHoldMovement(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(core.ActionRight)

	for i := range 3 {
		assert.True(t, h.Frame().Has(core.ActionRight), "tick %d", i)
	}
	assert.False(t, h.Frame().Has(core.ActionRight))
}

func TestHeldKeysRepeatRefreshes(t *testing.T) {
	h := NewHeldKeys(2)
	h.Press(core.ActionJump)
	h.Frame()
	h.Press(core.ActionJump)

	assert.True(t, h.Frame().Has(core.ActionJump))
	assert.True(t, h.Frame().Has(core.ActionJump))
	assert.False(t, h.Frame().Has(core.ActionJump))
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	h := NewHeldKeys(5)
	h.Press(core.ActionLeft)
	h.Press(core.ActionUp)
	h.Press(core.ActionRight)
	h.Press(core.ActionDown)

	f := h.Frame()
	assert.False(t, f.Has(core.ActionLeft))
	assert.True(t, f.Has(core.ActionRight))
	assert.False(t, f.Has(core.ActionUp))
	assert.True(t, f.Has(core.ActionDown))
}

func TestHeldKeysOneShot(t *testing.T) {
	h := NewHeldKeys(5)
	h.Press(core.ActionPause)
	h.Press(core.ActionAttack)

	f := h.Frame()
	assert.True(t, f.Has(core.ActionPause))
	assert.True(t, f.Has(core.ActionAttack))

	f = h.Frame()
	assert.False(t, f.Has(core.ActionPause))
	assert.True(t, f.Has(core.ActionAttack))
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys(0)
	h.Press(core.ActionLeft)
	h.Press(core.ActionRestart)
	h.Release()

	f := h.Frame()
	assert.False(t, f.Has(core.ActionLeft))
	assert.False(t, f.Has(core.ActionRestart))

	// A hold below one tick still lasts for the next tick.
	h.Press(core.ActionLeft)
	assert.True(t, h.Frame().Has(core.ActionLeft))
	assert.False(t, h.Frame().Has(core.ActionLeft))
}
