package board

// Move describes one tile travelling during a column collapse.
// Fresh tiles start above the board, so their From.Row is negative.
type Move struct {
	From  Coord
	To    Coord
	Fresh bool
}

// Distance is the number of rows travelled.
func (m Move) Distance() int {
	return m.To.Row - m.From.Row
}

// ClearCells empties every listed cell and marks it as matching.
// Touching a cell that is swapping or falling is an invariant violation.
func ClearCells(g *Grid, coords []Coord) {
	for _, at := range coords {
		c := g.At(at)
		if c.Swapping || c.Moving {
			panic(&InvariantError{At: at, Reason: "cleared while in flight"})
		}
		c.Type = Empty
		c.Powerup = false
		c.State = Normal
		c.Matching = true
	}
}

// Collapse compacts column col towards the bottom, keeping the relative order
// of the remaining tiles, then refills the vacated top slots with fresh tiles
// from draw. Every displaced or new cell is flagged as moving; new cells are
// also flagged ReadyToMove. The returned moves are ordered bottom to top,
// existing tiles first.
func Collapse(g *Grid, col int, draw func() TileType) []Move {
	var moves []Move

	wp := g.rows - 1 // write pointer, from the bottom
	for r := g.rows - 1; r >= 0; r-- {
		at := C(r, col)
		if g.At(at).IsEmpty() {
			continue
		}
		if r != wp {
			dst := C(wp, col)
			g.Swap(at, dst)
			g.At(dst).Moving = true
			moves = append(moves, Move{From: at, To: dst})
		}
		wp--
	}

	vacated := wp + 1
	for r := wp; r >= 0; r-- {
		at := C(r, col)
		c := g.At(at)
		c.Type = draw()
		c.Powerup = false
		c.State = Normal
		c.Matching = false
		c.Moving = true
		c.ReadyToMove = true
		moves = append(moves, Move{From: C(r-vacated, col), To: at, Fresh: true})
	}
	return moves
}

// EmptyColumns returns the columns that hold at least one empty cell.
func EmptyColumns(g *Grid) []int {
	var cols []int
	for c := 0; c < g.cols; c++ {
		for r := 0; r < g.rows; r++ {
			if g.At(C(r, c)).IsEmpty() {
				cols = append(cols, c)
				break
			}
		}
	}
	return cols
}

// Settle clears the falling flags of every cell in column col.
func Settle(g *Grid, col int) {
	for r := 0; r < g.rows; r++ {
		c := g.At(C(r, col))
		c.Moving = false
		c.ReadyToMove = false
		c.Matching = false
	}
}
