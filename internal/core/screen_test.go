package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorHazard)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorHazard {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", c)
	}
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds must be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return the default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillCell(Cell{Rune: 'X', Color: ColorPlant})

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Hello", ColorGold)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorGold {
			t.Errorf("DrawTextColor: expected yellow %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCenteredColor(2, "♥♥", ColorText)

	x := (20 - 2) / 2
	if s.Get(x, 2) != '♥' || s.Get(x+1, 2) != '♥' {
		t.Errorf("DrawTextCentered placed %q, expected hearts at %d", s.Row(2), x)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRectColor(NewRect(2, 2, 3, 3), '#', ColorStone)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorStone {
				t.Errorf("DrawRectColor: expected gray '#' at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRectColor should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorText)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for p, r := range corners {
		if c := s.GetCell(p[0], p[1]); c.Rune != r || c.Color != ColorText {
			t.Errorf("corner at %v = %+v, expected cyan %q", p, c, r)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawTextColor(0, 1, "BBBBB", ColorText)
	s.DrawHLine(0, 2, 5, 'C', ColorHazard)

	if got, expected := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorHazard)
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row := s.Row(0); !strings.HasPrefix(row, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row)
	}
	if s.GetCell(0, 0).Color != ColorHazard {
		t.Error("Colors should be preserved on resize")
	}

	s.Resize(15, 8)
	if row := s.Row(0); !strings.HasPrefix(row, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row)
	}
	if row := s.Row(-1); row != strings.Repeat(" ", 15) {
		t.Errorf("Out of bounds row should be spaces, got %q", row)
	}
}

func TestColorANSI(t *testing.T) {
	if ColorDefault.ANSI() != "" {
		t.Errorf("default color should map to the terminal default, got %q", ColorDefault.ANSI())
	}
	if ColorFire.ANSI() != "208" {
		t.Errorf("ColorFire.ANSI() = %q, want 208", ColorFire.ANSI())
	}
	if Color(250).ANSI() != "" {
		t.Errorf("unknown color should map to the terminal default")
	}
}
