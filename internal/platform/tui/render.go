package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// colorStyles maps every core.Color code to a lipgloss style.
var colorStyles [256]lipgloss.Style

func init() {
	colorStyles[core.ColorDefault] = lipgloss.NewStyle()
	for c := 1; c < len(colorStyles); c++ {
		colorStyles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(c)))
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(colorStyles[startColor].Render(run.String()))
		}
	}
	return sb.String()
}
