package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-goblins/internal/actors"
	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/engine"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

type glyph struct {
	r rune
	c core.Color
}

var terrainGlyphs = map[string]glyph{
	KindGround:   {'▓', core.ColorEarth},
	KindSolid:    {'█', core.ColorStone},
	KindPlatform: {'=', core.ColorWood},
	KindLadder:   {'H', core.ColorWood},
	KindGrave:    {'∩', core.ColorStone},
	KindWinArea:  {'░', core.ColorGold},
}

var familyGlyphs = map[string]glyph{
	actors.FamilyWalker:   {'Z', core.ColorZombie},
	actors.FamilyPlant:    {'P', core.ColorPlant},
	actors.FamilyMagician: {'M', core.ColorMagic},
	actors.FamilyEyeball:  {'o', core.ColorHazard},
	actors.FamilyBolt:     {'*', core.ColorMagic},
	actors.FamilyTorch:    {'!', core.ColorFire},
	actors.FamilyFlame:    {'^', core.ColorFire},
}

func knightGlyph(k *actors.Knight) glyph {
	switch {
	case k.Frog():
		return glyph{'&', core.ColorFrog}
	case k.Dead():
		return glyph{'x', core.ColorSkin}
	case k.Armoured():
		return glyph{'@', core.ColorSteel}
	}
	return glyph{'@', core.ColorSkin}
}

func (g *Game) heroEntity() engine.Entity {
	if h := g.session.Hero(); h != nil {
		return h
	}
	return nil
}

// Render draws the playfield through the camera and the HUD line above it.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		msg := "cannot load level"
		if g.err != nil {
			msg = fmt.Sprintf("cannot load level: %v", g.err)
		}
		dst.DrawTextCenteredColor(dst.Height()/2, msg, core.ColorAlert)
		return
	}

	live := g.session.Arena().Entities()
	for _, e := range live {
		if e.Sprite() == engine.NoSprite && !e.Caps().Has(engine.CapPlayer) {
			if gl, ok := terrainGlyphs[KindOf(e)]; ok {
				g.drawEntity(dst, e, gl)
			}
		}
	}
	for _, e := range live {
		if e.Sprite() == engine.NoSprite || e.Caps().Has(engine.CapPlayer) {
			continue
		}
		if gl, ok := familyGlyphs[KindOf(e)]; ok {
			g.drawEntity(dst, e, gl)
		}
	}
	if hero := g.session.Hero(); hero != nil && hero.Sprite() != engine.NoSprite {
		g.drawEntity(dst, hero, knightGlyph(hero))
	}

	g.drawHUD(dst)
	if g.paused {
		drawPaused(dst)
	}
}

// drawPaused frames a pause banner in the middle of the screen.
func drawPaused(dst *core.Screen) {
	const msg = " Paused "
	w, h := len(msg)+2, 3
	box := core.NewRect((dst.Width()-w)/2, dst.Height()/2-1, w, h)
	dst.DrawRectColor(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorDim)
	dst.DrawTextColor(box.X+1, box.Y+1, msg, core.ColorText)
}

func (g *Game) drawEntity(dst *core.Screen, e engine.Entity, gl glyph) {
	cw, ch := g.cfg.Render.CellWidth, g.cfg.Render.CellHeight
	if cw <= 0 || ch <= 0 {
		return
	}
	viewBox := core.Box{X: g.view.X, Y: g.view.Y, W: g.view.W, H: g.view.H}
	box := engine.Bounds(e)
	if !viewBox.Intersects(box) {
		return
	}

	r := g.view.Cells(box, cw, ch)
	// Clip to the playfield so long terrain does not walk the whole world.
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1 := min(r.Right(), dst.Width())
	y1 := min(r.Bottom(), dst.Height()-hudRows)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	dst.DrawRectColor(core.NewRect(x0, y0+hudRows, x1-x0, y1-y0), gl.r, gl.c)
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session
	switch {
	case s.Won():
		dst.DrawTextCenteredColor(0, fmt.Sprintf("Congratulations: you won! Score %d - r to play again", s.Score()), core.ColorGold)
		return
	case s.GameOver():
		dst.DrawTextCenteredColor(0, fmt.Sprintf("Game over! Score %d - r to restart", s.Score()), core.ColorAlert)
		return
	}

	left := fmt.Sprintf("Lives: %d/%d", s.Lives(), s.MaxLives())
	right := fmt.Sprintf("Score: %d", s.Score())
	dst.DrawTextColor(1, 0, left, core.ColorText)
	dst.DrawTextCenteredColor(0, strings.ToUpper(g.Title()), core.ColorDim)
	dst.DrawTextColor(dst.Width()-len(right)-1, 0, right, core.ColorText)
}
