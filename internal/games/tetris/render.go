package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// Layout constants. Each board cell is two characters wide.
const (
	cellW     = 2
	boardBoxW = engine.BoardWidth*cellW + 2
	boardBoxH = engine.BoardHeight + 2
	panelW    = 14
	panelGap  = 2

	// MinWidth and MinHeight are the smallest screen the layout fits.
	MinWidth  = boardBoxW + 2*(panelW+panelGap)
	MinHeight = boardBoxH
)

const (
	blockRune = '█'
	ghostRune = '░'
	emptyRune = '·'
)

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", MinWidth, MinHeight))
		return
	}
	if g.sess == nil {
		return
	}

	snap := g.sess.Snapshot()
	boardX := core.Max(0, (dst.Width()-boardBoxW)/2)
	boardY := core.Max(0, (dst.Height()-boardBoxH)/2)

	g.renderBoard(dst, snap, boardX, boardY)
	g.renderLeftPanel(dst, snap, boardX-panelGap-panelW, boardY)
	g.renderRightPanel(dst, snap, boardX+boardBoxW+panelGap, boardY)

	switch snap.Phase {
	case engine.PhaseGameOver:
		line2 := fmt.Sprintf("Score %d  Press R", snap.Score)
		if snap.Score > 0 && snap.Score >= snap.HighScore {
			line2 = fmt.Sprintf("New high score %d!", snap.Score)
		}
		g.renderOverlay(dst, "Game Over", line2)
	case engine.PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderBoard draws the well, locked cells, ghost and falling piece.
func (g *Game) renderBoard(dst *core.Screen, snap engine.Snapshot, ox, oy int) {
	theme := snap.Settings.ColorTheme
	dst.DrawBox(core.NewRect(ox, oy, boardBoxW, boardBoxH), FrameColor(theme))

	for y := 0; y < engine.BoardHeight; y++ {
		flashing := snap.Flashing(y)
		for x := 0; x < engine.BoardWidth; x++ {
			k := snap.Board.At(x, y)
			switch {
			case k == engine.None:
				drawCell(dst, ox, oy, x, y, emptyRune, core.ColorDarkGray)
			case flashing:
				drawCell(dst, ox, oy, x, y, blockRune, core.ColorBrightWhite)
			default:
				drawCell(dst, ox, oy, x, y, blockRune, PieceColor(k, snap.Level, theme))
			}
		}
	}

	if snap.Ghost != nil && snap.Current != nil {
		c := PieceColor(snap.Ghost.Kind, snap.Level, theme)
		for _, p := range snap.Ghost.Cells() {
			drawCell(dst, ox, oy, p.X, p.Y, ghostRune, c)
		}
	}
	if snap.Current != nil {
		c := PieceColor(snap.Current.Kind, snap.Level, theme)
		for _, p := range snap.Current.Cells() {
			drawCell(dst, ox, oy, p.X, p.Y, blockRune, c)
		}
	}
}

// drawCell paints one board cell. Cells above the visible field are skipped.
func drawCell(dst *core.Screen, ox, oy, x, y int, r rune, c core.Color) {
	if x < 0 || x >= engine.BoardWidth || y < 0 || y >= engine.BoardHeight {
		return
	}
	sx := ox + 1 + x*cellW
	sy := oy + 1 + y
	if r == emptyRune {
		dst.SetColor(sx, sy, ' ', c)
		dst.SetColor(sx+1, sy, r, c)
		return
	}
	dst.SetColor(sx, sy, r, c)
	dst.SetColor(sx+1, sy, r, c)
}

// renderLeftPanel draws the hold box and the score readout.
func (g *Game) renderLeftPanel(dst *core.Screen, snap engine.Snapshot, x, y int) {
	frame := FrameColor(snap.Settings.ColorTheme)
	row := y

	if snap.Settings.HoldPiece {
		label := "HOLD"
		if !snap.CanHold {
			label = "HOLD (used)"
		}
		dst.DrawBox(core.NewRect(x, row, panelW, 4), frame)
		dst.DrawTextColor(x+2, row, label, frame)
		drawMini(dst, snap.Held, snap.Level, snap.Settings.ColorTheme, x+3, row+1)
		row += 5
	}

	stats := []struct {
		label string
		value int
	}{
		{"SCORE", snap.Score},
		{"HIGH", snap.HighScore},
		{"LEVEL", snap.Level},
		{"LINES", snap.Lines},
	}
	for _, s := range stats {
		dst.DrawTextColor(x+1, row, s.label, frame)
		dst.DrawText(x+1, row+1, fmt.Sprintf("%d", s.value))
		row += 2
	}

	row++
	dst.DrawTextColor(x+1, row, strings.ToUpper(string(snap.Settings.Mode)), frame)
}

// renderRightPanel draws the preview queue and, room permitting, the
// per-kind piece counts.
func (g *Game) renderRightPanel(dst *core.Screen, snap engine.Snapshot, x, y int) {
	frame := FrameColor(snap.Settings.ColorTheme)
	row := y

	next := snap.NextPieces
	if len(next) > engine.MaxNextPieces {
		next = next[:engine.MaxNextPieces]
	}
	if len(next) > 0 {
		h := 3*len(next) + 1
		dst.DrawBox(core.NewRect(x, row, panelW, h), frame)
		dst.DrawTextColor(x+2, row, "NEXT", frame)
		for i, k := range next {
			drawMini(dst, k, snap.Level, snap.Settings.ColorTheme, x+3, row+1+3*i)
		}
		row += h + 1
	}

	if row+engine.KindCount > y+boardBoxH {
		return
	}
	for _, k := range engine.Kinds {
		dst.SetColor(x+1, row, blockRune, PieceColor(k, snap.Level, snap.Settings.ColorTheme))
		dst.DrawText(x+3, row, fmt.Sprintf("%s %4d", k, snap.Statistics.Count(k)))
		row++
	}
}

// drawMini draws a kind's spawn orientation, skipping its empty rows.
func drawMini(dst *core.Screen, k engine.PieceKind, level int, theme engine.ColorTheme, x, y int) {
	if !k.Valid() {
		return
	}
	c := PieceColor(k, level, theme)
	shape := engine.BaseShape(k)
	row := 0
	for sy := 0; sy < engine.ShapeSize; sy++ {
		empty := true
		for sx := 0; sx < engine.ShapeSize; sx++ {
			if shape[sy][sx] {
				empty = false
				dst.SetColor(x+sx*cellW, y+row, blockRune, c)
				dst.SetColor(x+sx*cellW+1, y+row, blockRune, c)
			}
		}
		if !empty {
			row++
		}
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
