// Package engine implements a deterministic falling-block game as a pure state
// machine. Every operation takes a State and returns a new State; nothing here
// performs I/O, reads clocks, or owns goroutines. Randomness is injected by the
// caller so identical inputs always produce identical sequences.
package engine

import "github.com/vovakirdan/tui-tetris/internal/core"

// Board dimensions in cells. Row 0 is the top.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// ShapeSize is the side of the square occupancy matrix every piece lives in.
const ShapeSize = 4

// PieceKind identifies one of the seven tetrominoes. The zero value, None,
// doubles as the empty board cell and "nothing held".
type PieceKind uint8

const (
	None PieceKind = iota
	I
	O
	T
	S
	Z
	J
	L
)

// KindCount is the number of real piece kinds.
const KindCount = 7

// Kinds lists every piece kind in canonical order.
var Kinds = [KindCount]PieceKind{I, O, T, S, Z, J, L}

// String returns the single-letter name of the kind.
func (k PieceKind) String() string {
	switch k {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	default:
		return "-"
	}
}

// Valid reports whether k is one of the seven real kinds.
func (k PieceKind) Valid() bool {
	return k >= I && k <= L
}

// index maps a valid kind to 0..6.
func (k PieceKind) index() int {
	return int(k) - 1
}

// Shape is a 4x4 occupancy matrix indexed [row][col].
type Shape [ShapeSize][ShapeSize]bool

func shapeOf(rows [ShapeSize]string) Shape {
	var s Shape
	for r, line := range rows {
		for c, ch := range line {
			s[r][c] = ch == '#'
		}
	}
	return s
}

var baseShapes = [KindCount]Shape{
	shapeOf([ShapeSize]string{"....", "####", "....", "...."}), // I
	shapeOf([ShapeSize]string{"##..", "##..", "....", "...."}), // O
	shapeOf([ShapeSize]string{".#..", "###.", "....", "...."}), // T
	shapeOf([ShapeSize]string{".##.", "##..", "....", "...."}), // S
	shapeOf([ShapeSize]string{"##..", ".##.", "....", "...."}), // Z
	shapeOf([ShapeSize]string{"#...", "###.", "....", "...."}), // J
	shapeOf([ShapeSize]string{"..#.", "###.", "....", "...."}), // L
}

// BaseShape returns the spawn orientation of a kind. None yields an empty shape.
func BaseShape(k PieceKind) Shape {
	if !k.Valid() {
		return Shape{}
	}
	return baseShapes[k.index()]
}

// Rotated returns the occupancy of kind k in the given rotation state (0..3,
// reduced modulo 4). The transform is always applied to the base shape, never
// accumulated, so Rotated(k, 2) equals rotating the base twice.
//
// O is rotation-invariant: its 2x2 block keeps its cells in every state.
func Rotated(k PieceKind, rotation int) Shape {
	base := BaseShape(k)
	rotation = ((rotation % 4) + 4) % 4
	if rotation == 0 || k == O {
		return base
	}

	const n = ShapeSize
	var out Shape
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch rotation {
			case 1:
				out[j][n-1-i] = base[i][j]
			case 2:
				out[n-1-i][n-1-j] = base[i][j]
			case 3:
				out[n-1-j][i] = base[i][j]
			}
		}
	}
	return out
}

// Piece is the falling piece: its kind, the board position of its 4x4
// matrix's top-left corner, and its rotation state.
type Piece struct {
	Kind     PieceKind
	Position core.Point
	Rotation int
}

// SpawnPosition is where new pieces appear.
var SpawnPosition = core.Point{X: (BoardWidth - ShapeSize) / 2, Y: 0}

// Spawn creates a fresh piece of kind k at the spawn position in rotation 0.
func Spawn(k PieceKind) Piece {
	return Piece{Kind: k, Position: SpawnPosition}
}

// Shape returns the piece's current occupancy.
func (p Piece) Shape() Shape {
	return Rotated(p.Kind, p.Rotation)
}

// Cells returns the board coordinates of the piece's four blocks.
func (p Piece) Cells() []core.Point {
	shape := p.Shape()
	cells := make([]core.Point, 0, 4)
	for r := 0; r < ShapeSize; r++ {
		for c := 0; c < ShapeSize; c++ {
			if shape[r][c] {
				cells = append(cells, core.Point{X: p.Position.X + c, Y: p.Position.Y + r})
			}
		}
	}
	return cells
}

// Translated returns the piece moved by (dx, dy).
func (p Piece) Translated(dx, dy int) Piece {
	p.Position = p.Position.Add(core.Point{X: dx, Y: dy})
	return p
}
