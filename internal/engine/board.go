package engine

// Grid is the settled playfield: BoardHeight rows of BoardWidth cells, each
// holding the kind that filled it or None. Grid is a value type; every
// operation returns a new Grid and leaves its input untouched.
type Grid struct {
	cells [BoardHeight * BoardWidth]PieceKind
}

// EmptyGrid returns a playfield with every cell empty.
func EmptyGrid() Grid {
	return Grid{}
}

// At returns the cell at column x, row y. Out-of-range cells read as None.
func (g Grid) At(x, y int) PieceKind {
	if !inBounds(x, y) {
		return None
	}
	return g.cells[y*BoardWidth+x]
}

// With returns a copy of g with one cell replaced. Out-of-range writes are
// dropped.
func (g Grid) With(x, y int, k PieceKind) Grid {
	if inBounds(x, y) {
		g.cells[y*BoardWidth+x] = k
	}
	return g
}

// Row returns a copy of row y.
func (g Grid) Row(y int) [BoardWidth]PieceKind {
	var row [BoardWidth]PieceKind
	if y < 0 || y >= BoardHeight {
		return row
	}
	copy(row[:], g.cells[y*BoardWidth:(y+1)*BoardWidth])
	return row
}

// Filled counts the occupied cells.
func (g Grid) Filled() int {
	n := 0
	for _, c := range g.cells {
		if c != None {
			n++
		}
	}
	return n
}

func inBounds(x, y int) bool {
	return x >= 0 && x < BoardWidth && y >= 0 && y < BoardHeight
}

// IsValidPlacement reports whether p fits on g. Cells above the top edge are
// allowed; cells past the sides or bottom, or over settled blocks, are not.
func IsValidPlacement(p Piece, g Grid) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= BoardWidth || c.Y >= BoardHeight {
			return false
		}
		if c.Y >= 0 && g.At(c.X, c.Y) != None {
			return false
		}
	}
	return true
}

// Commit writes the piece's cells into a copy of g. Cells above the top edge
// are discarded.
func Commit(g Grid, p Piece) Grid {
	for _, c := range p.Cells() {
		if c.Y >= 0 {
			g = g.With(c.X, c.Y, p.Kind)
		}
	}
	return g
}

// CompletedRows returns the indices of fully occupied rows, top to bottom.
func CompletedRows(g Grid) []int {
	var rows []int
	for y := 0; y < BoardHeight; y++ {
		full := true
		for x := 0; x < BoardWidth; x++ {
			if g.At(x, y) == None {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

// WithRowsRemoved deletes the listed rows, shifts everything above them down,
// and inserts empty rows at the top. Rows outside the board are ignored.
func WithRowsRemoved(g Grid, rows []int) Grid {
	if len(rows) == 0 {
		return g
	}
	drop := make(map[int]bool, len(rows))
	for _, r := range rows {
		drop[r] = true
	}

	var out Grid
	dst := BoardHeight - 1
	for y := BoardHeight - 1; y >= 0; y-- {
		if drop[y] {
			continue
		}
		copy(out.cells[dst*BoardWidth:(dst+1)*BoardWidth], g.cells[y*BoardWidth:(y+1)*BoardWidth])
		dst--
	}
	return out
}

// dropDistance is how many rows p can fall before it would collide.
func dropDistance(p Piece, g Grid) int {
	d := 0
	for IsValidPlacement(p.Translated(0, d+1), g) {
		d++
	}
	return d
}

// Ghost returns where p would land if hard-dropped.
func Ghost(p Piece, g Grid) Piece {
	return p.Translated(0, dropDistance(p, g))
}
