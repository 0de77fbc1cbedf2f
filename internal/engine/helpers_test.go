package engine

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// seqRand replays a fixed list of values, reduced modulo n.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// fillRows returns a grid with the given rows filled except for the listed
// gap columns.
func fillRows(g Grid, rows []int, gaps ...int) Grid {
	skip := make(map[int]bool, len(gaps))
	for _, x := range gaps {
		skip[x] = true
	}
	for _, y := range rows {
		for x := 0; x < BoardWidth; x++ {
			if !skip[x] {
				g = g.With(x, y, Z)
			}
		}
	}
	return g
}

// playing starts a game with settings and then replaces board and piece.
func playing(settings Settings, board Grid, piece Piece) State {
	st := Init(0, &settings, seeded(1))
	st.Board = board
	st.Current = &piece
	return st
}

func at(k PieceKind, x, y, rotation int) Piece {
	return Piece{Kind: k, Position: core.Point{X: x, Y: y}, Rotation: rotation}
}
