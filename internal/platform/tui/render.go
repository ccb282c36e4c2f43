package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-goblins/internal/core"
)

// styleCache holds one lipgloss style per palette color.
var styleCache = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for c := core.ColorDefault; c <= core.ColorDim; c++ {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := styleCache[c]; ok {
		return style
	}
	return styleCache[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
