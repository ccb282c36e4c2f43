// Package tui runs levels in the terminal with Bubble Tea: the play loop,
// key handling, the level menu, the scoreboard and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers a simulation tick of the play model that scheduled it.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// generations tells the tick chains of successive play models apart, so a
// tick still in flight from a finished game cannot drive the next one.
var generations atomic.Uint64

func nextGeneration() uint64 {
	return generations.Add(1)
}

// tickCmd schedules the next tick at tickRate ticks per second.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
