package game

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-goblins/internal/actors"
	"github.com/vovakirdan/tui-goblins/internal/core"
)

func TestFrameDescribesWorld(t *testing.T) {
	level := builtin(t, "crypt")
	s := newSession(t, level, quietConfig())
	s.Tick(core.NewInputFrame())

	f := s.Frame()
	assert.Equal(t, 1, f.Tick)
	assert.Equal(t, "crypt", f.Level)
	assert.Equal(t, 3, f.Lives)
	require.Len(t, f.Entities, len(level.Terrain)+len(level.Enemies)+1)

	kinds := map[string]int{}
	for _, e := range f.Entities {
		kinds[e.Kind]++
	}
	assert.Equal(t, 2, kinds[KindGround])
	assert.Equal(t, 1, kinds[KindPlatform])
	assert.Equal(t, 1, kinds[KindLadder])
	assert.Equal(t, 1, kinds[KindGrave])
	assert.Equal(t, 1, kinds[KindSolid])
	assert.Equal(t, 1, kinds[KindWinArea])
	assert.Equal(t, 1, kinds[actors.FamilyWalker])
	assert.Equal(t, 2, kinds[actors.FamilyPlant])
	assert.Equal(t, 1, kinds[actors.FamilyKnight])

	hero := f.Entities[len(f.Entities)-1]
	assert.Equal(t, actors.FamilyKnight, hero.Kind)
	assert.Equal(t, "knight/IdleRight", hero.Sprite)
	require.NotNil(t, hero.Region)
	assert.Equal(t, actors.Region{X: 134, Y: 609, W: 20, H: 31}, *hero.Region)

	for _, e := range f.Entities {
		if e.Sprite == "" {
			assert.Nil(t, e.Region, e.Kind)
		}
	}
}

func TestFrameRegionFallsBackToIdle(t *testing.T) {
	s := newSession(t, builtin(t, "crypt"), quietConfig())
	s.Arena().Spawn(actors.NewMagician(core.V(300, 100), s.cfg.Magician))
	s.Tick(core.NewInputFrame())

	plantIdle, ok := actors.LookupRegion("plant/IdleRight")
	require.True(t, ok)

	var found bool
	for _, e := range s.Frame().Entities {
		if e.Kind != actors.FamilyMagician {
			continue
		}
		found = true
		require.NotNil(t, e.Region)
		assert.Equal(t, plantIdle, *e.Region)
	}
	assert.True(t, found, "magician exported")
}

func TestFrameStream(t *testing.T) {
	s := newSession(t, builtin(t, "crypt"), quietConfig())

	var buf bytes.Buffer
	enc := NewFrameEncoder(&buf)
	var sent []Frame
	for range 3 {
		s.Tick(core.FrameOf(core.ActionRight))
		f := s.Frame()
		sent = append(sent, f)
		require.NoError(t, enc.Encode(f))
	}

	dec := NewFrameDecoder(&buf)
	for _, want := range sent {
		got, err := dec.Decode()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := dec.Decode()
	assert.ErrorIs(t, err, io.EOF)
}
