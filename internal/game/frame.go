package game

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-goblins/internal/actors"
	"github.com/vovakirdan/tui-goblins/internal/engine"
)

// Frame is the exported state of one tick, for external renderers.
type Frame struct {
	Tick     int           `msgpack:"tick"`
	Level    string        `msgpack:"level"`
	Lives    int           `msgpack:"lives"`
	Score    int           `msgpack:"score"`
	Won      bool          `msgpack:"won"`
	GameOver bool          `msgpack:"game_over"`
	Entities []EntityFrame `msgpack:"entities"`
}

// EntityFrame is one entity in a Frame. Sprite is empty for entities drawn
// from their kind alone, and for a blinking hero. Region is the sprite's
// sheet rectangle; a frame missing from the sheet gets its family's idle
// region.
type EntityFrame struct {
	Kind   string         `msgpack:"kind"`
	X      float64        `msgpack:"x"`
	Y      float64        `msgpack:"y"`
	W      float64        `msgpack:"w"`
	H      float64        `msgpack:"h"`
	Sprite string         `msgpack:"sprite,omitempty"`
	Region *actors.Region `msgpack:"region,omitempty"`
}

// Entity kinds for terrain, which carries no sprite.
const (
	KindGround   = "ground"
	KindSolid    = "solid"
	KindPlatform = "platform"
	KindLadder   = "ladder"
	KindGrave    = "grave"
	KindWinArea  = "win_area"
	KindUnknown  = "unknown"
)

// KindOf names what e is for renderers: the sprite family for animated
// entities, the terrain kind for static geometry.
func KindOf(e engine.Entity) string {
	caps := e.Caps()
	switch {
	case caps.Has(engine.CapPlayer):
		return actors.FamilyKnight
	case e.Sprite() != engine.NoSprite:
		return actors.Family(e.Sprite())
	case caps.Has(engine.CapGrave):
		return KindGrave
	case caps.Has(engine.CapLadder):
		return KindLadder
	case caps.Has(engine.CapWinArea):
		return KindWinArea
	case caps.Has(engine.CapPlatform):
		return KindPlatform
	case caps.Has(engine.CapGround):
		return KindGround
	case caps.Has(engine.CapSolid):
		return KindSolid
	}
	return KindUnknown
}

// Frame captures the current state of the session.
func (s *Session) Frame() Frame {
	live := s.arena.Entities()
	f := Frame{
		Tick:     s.arena.Count(),
		Level:    s.level.ID,
		Lives:    s.lives,
		Score:    s.Score(),
		Won:      s.won,
		GameOver: s.gameOver,
		Entities: make([]EntityFrame, 0, len(live)),
	}
	for _, e := range live {
		pos, size := e.Pos(), e.Size()
		ef := EntityFrame{
			Kind:   KindOf(e),
			X:      pos.X,
			Y:      pos.Y,
			W:      size.X,
			H:      size.Y,
			Sprite: string(e.Sprite()),
		}
		if id := e.Sprite(); id != engine.NoSprite {
			region, _ := actors.LookupRegion(id)
			ef.Region = &region
		}
		f.Entities = append(f.Entities, ef)
	}
	return f
}

// FrameEncoder writes a stream of msgpack-encoded frames.
type FrameEncoder struct {
	enc *msgpack.Encoder
}

// NewFrameEncoder creates an encoder writing to w.
func NewFrameEncoder(w io.Writer) *FrameEncoder {
	return &FrameEncoder{enc: msgpack.NewEncoder(w)}
}

// Encode writes one frame.
func (e *FrameEncoder) Encode(f Frame) error {
	if err := e.enc.Encode(&f); err != nil {
		return fmt.Errorf("game: encode frame %d: %w", f.Tick, err)
	}
	return nil
}

// FrameDecoder reads frames written by a FrameEncoder.
type FrameDecoder struct {
	dec *msgpack.Decoder
}

// NewFrameDecoder creates a decoder reading from r.
func NewFrameDecoder(r io.Reader) *FrameDecoder {
	return &FrameDecoder{dec: msgpack.NewDecoder(r)}
}

// Decode reads the next frame. It returns io.EOF at the end of the stream.
func (d *FrameDecoder) Decode() (Frame, error) {
	var f Frame
	if err := d.dec.Decode(&f); err != nil {
		return Frame{}, err
	}
	return f, nil
}
