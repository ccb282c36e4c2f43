package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-goblins/internal/actors"
	"github.com/vovakirdan/tui-goblins/internal/core"
)

func TestViewFollow(t *testing.T) {
	world := core.V(1000, 400)
	tests := []struct {
		name   string
		target core.Box
		want   core.Vec
	}{
		{"centred", core.Box{X: 500, Y: 300, W: 20, H: 30}, core.V(460, 290)},
		{"clamped at origin", core.Box{X: 10, Y: 10, W: 20, H: 30}, core.V(0, 0)},
		{"clamped at far edge", core.Box{X: 990, Y: 380, W: 10, H: 20}, core.V(900, 350)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := View{W: 100, H: 50}
			target, err := actors.NewSolid(tt.target)
			assert.NoError(t, err)
			v.Follow(target, world)
			assert.Equal(t, tt.want, core.V(v.X, v.Y))
		})
	}
}

func TestViewLargerThanWorld(t *testing.T) {
	v := View{X: 30, Y: 30, W: 500, H: 500}
	v.Follow(nil, core.V(300, 240))
	assert.Equal(t, core.V(0, 0), core.V(v.X, v.Y))
}

func TestViewCells(t *testing.T) {
	v := View{X: 10, Y: 0, W: 320, H: 230}
	assert.Equal(t, core.NewRect(0, 0, 5, 4), v.Cells(core.Box{X: 10, Y: 0, W: 20, H: 31}, 4, 10))
	assert.Equal(t, core.NewRect(2, 1, 1, 1), v.Cells(core.Box{X: 19, Y: 12, W: 1, H: 1}, 4, 10))
}
