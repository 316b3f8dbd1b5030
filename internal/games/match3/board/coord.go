package board

import "fmt"

// Coord addresses a cell by row and column. Row 0 is the top row.
type Coord struct {
	Row int
	Col int
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns the coordinate one step away in direction d.
func (c Coord) Add(d Dir) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Adjacent reports whether c and o share an edge.
func (c Coord) Adjacent(o Coord) bool {
	dr := c.Row - o.Row
	dc := c.Col - o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// DirTo returns the direction leading from c to an adjacent o.
func (c Coord) DirTo(o Coord) (Dir, bool) {
	for _, d := range Dirs {
		if c.Add(d) == o {
			return d, true
		}
	}
	return Right, false
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
