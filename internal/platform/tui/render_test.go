package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-goblins/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColor(0, 0, "Lives", core.ColorText)
	s.DrawText(6, 0, "3/3")
	s.SetColor(2, 2, '@', core.ColorSteel)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Lives")
	assert.Contains(t, lines[0], "3/3")
	assert.Contains(t, lines[2], "@")
}

func TestStyleForUnknownColor(t *testing.T) {
	assert.Equal(t, "x", styleFor(core.Color(200)).Render("x"))
}
