package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// Guideline colors, one per kind in engine.Kinds order.
var modernPalette = [engine.KindCount]core.Color{
	core.ColorBrightCyan,   // I
	core.ColorBrightYellow, // O
	core.ColorPurple,       // T
	core.ColorBrightGreen,  // S
	core.ColorBrightRed,    // Z
	core.ColorBrightBlue,   // J
	core.ColorOrange,       // L
}

// The NES cycles ten three-color palettes by level. These are the nearest
// 256-color codes to the console's RGB values.
var nesPalettes = [10][3]core.Color{
	{21, 33, 75},
	{34, 46, 157},
	{129, 164, 225},
	{27, 34, 83},
	{166, 35, 85},
	{34, 63, 141},
	{202, 243, 250},
	{63, 127, 213},
	{27, 202, 209},
	{202, 166, 215},
}

// Four shades of green, lightest first.
var gameBoyShades = [4]core.Color{142, 106, 64, 22}

// PieceColor returns the color of a kind under a theme. The NES theme
// depends on the level; the others ignore it.
func PieceColor(k engine.PieceKind, level int, theme engine.ColorTheme) core.Color {
	if !k.Valid() {
		return core.ColorDefault
	}
	switch theme {
	case engine.ThemeNES:
		return nesPalettes[((level%10)+10)%10][nesSlot(k)]
	case engine.ThemeGameBoy:
		return gameBoyShades[gameBoyShade(k)]
	default:
		return modernPalette[kindIndex(k)]
	}
}

// nesSlot picks one of a palette's three colors.
func nesSlot(k engine.PieceKind) int {
	switch k {
	case engine.T, engine.J, engine.Z:
		return 0
	case engine.O, engine.S, engine.L:
		return 1
	default:
		return 2
	}
}

func gameBoyShade(k engine.PieceKind) int {
	switch k {
	case engine.I, engine.J, engine.L:
		return 0
	case engine.O, engine.T:
		return 1
	default:
		return 2
	}
}

func kindIndex(k engine.PieceKind) int {
	for i, kind := range engine.Kinds {
		if kind == k {
			return i
		}
	}
	return 0
}

// FrameColor is the color of borders and labels under a theme.
func FrameColor(theme engine.ColorTheme) core.Color {
	switch theme {
	case engine.ThemeGameBoy:
		return gameBoyShades[1]
	case engine.ThemeNES:
		return core.ColorGray
	default:
		return core.ColorWhite
	}
}
