package engine

import "github.com/vovakirdan/tui-tetris/internal/core"

// kicks lists the candidate offsets tried, in order, for a clockwise
// rotation out of each state (0→1, 1→2, 2→3, 3→0). Y grows downward.
type kicks [4][]core.Point

func pts(xy ...int) []core.Point {
	out := make([]core.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, core.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

var srsKicks = kicks{
	pts(0, 0, -1, 0, -1, -1, 0, 2, -1, 2),
	pts(0, 0, 1, 0, 1, 1, 0, -2, 1, -2),
	pts(0, 0, 1, 0, 1, -1, 0, 2, 1, 2),
	pts(0, 0, -1, 0, -1, 1, 0, -2, -1, -2),
}

var srsKicksI = kicks{
	pts(0, 0, -2, 0, 1, 0, -2, 1, 1, -2),
	pts(0, 0, -1, 0, 2, 0, -1, -2, 2, 1),
	pts(0, 0, 2, 0, -1, 0, 2, -1, -1, 2),
	pts(0, 0, 1, 0, -2, 0, 1, 2, -2, -1),
}

var noKick = pts(0, 0)

// KickCandidates returns the offsets tried when rotating kind k clockwise out
// of state from under the given rotation system.
func KickCandidates(system RotationSystem, k PieceKind, from int) []core.Point {
	if system != RotationSRS || k == O {
		return noKick
	}
	from = ((from % 4) + 4) % 4
	if k == I {
		return srsKicksI[from]
	}
	return srsKicks[from]
}

// TryRotate attempts a clockwise rotation of p on g. Each kick candidate is
// applied to the rotated piece in order and the first valid placement wins.
// When none fits the original piece is returned with ok=false.
func TryRotate(p Piece, g Grid, system RotationSystem) (Piece, bool) {
	rotated := p
	rotated.Rotation = (p.Rotation + 1) % 4
	for _, off := range KickCandidates(system, p.Kind, p.Rotation) {
		candidate := rotated.Translated(off.X, off.Y)
		if IsValidPlacement(candidate, g) {
			return candidate, true
		}
	}
	return p, false
}
