package engine

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// rotateCW turns an arbitrary shape a quarter clockwise.
func rotateCW(s Shape) Shape {
	var out Shape
	for i := 0; i < ShapeSize; i++ {
		for j := 0; j < ShapeSize; j++ {
			out[j][ShapeSize-1-i] = s[i][j]
		}
	}
	return out
}

func count(s Shape) int {
	n := 0
	for _, row := range s {
		for _, c := range row {
			if c {
				n++
			}
		}
	}
	return n
}

func TestRotatedRoundTrip(t *testing.T) {
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			if Rotated(k, 4) != BaseShape(k) {
				t.Errorf("Rotated(%v, 4) differs from base shape", k)
			}
			if Rotated(k, 0) != BaseShape(k) {
				t.Errorf("Rotated(%v, 0) differs from base shape", k)
			}
			for r := 0; r < 4; r++ {
				if got := count(Rotated(k, r)); got != 4 {
					t.Errorf("Rotated(%v, %d) has %d cells, expected 4", k, r, got)
				}
			}
			if k == O {
				return
			}
			step := BaseShape(k)
			for r := 1; r < 4; r++ {
				step = rotateCW(step)
				if Rotated(k, r) != step {
					t.Errorf("Rotated(%v, %d) differs from %d successive rotations", k, r, r)
				}
			}
		})
	}
}

func TestRotatedOInvariant(t *testing.T) {
	for r := 0; r < 4; r++ {
		if Rotated(O, r) != BaseShape(O) {
			t.Errorf("Rotated(O, %d) should equal the base shape", r)
		}
	}
}

func TestRotatedT(t *testing.T) {
	// .#..      ..#.
	// ###.  ->  ..##
	// ....      ..#.
	got := Rotated(T, 1)
	want := shapeOf([ShapeSize]string{"..#.", "..##", "..#.", "...."})
	if got != want {
		t.Errorf("Rotated(T, 1) = %v, expected %v", got, want)
	}
}

func TestSpawn(t *testing.T) {
	p := Spawn(L)
	if p.Position != (core.Point{X: 3, Y: 0}) {
		t.Errorf("spawn position = %+v, expected {3 0}", p.Position)
	}
	if p.Rotation != 0 {
		t.Errorf("spawn rotation = %d, expected 0", p.Rotation)
	}

	cells := Spawn(I).Cells()
	want := []core.Point{{X: 3, Y: 1}, {X: 4, Y: 1}, {X: 5, Y: 1}, {X: 6, Y: 1}}
	if len(cells) != len(want) {
		t.Fatalf("I cells = %v, expected %v", cells, want)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("I cells[%d] = %+v, expected %+v", i, cells[i], want[i])
		}
	}
}

func TestPieceKindString(t *testing.T) {
	if I.String() != "I" || L.String() != "L" || None.String() != "-" {
		t.Error("unexpected kind names")
	}
	if None.Valid() || !T.Valid() || PieceKind(9).Valid() {
		t.Error("Valid() misreports kinds")
	}
}
