package board

import (
	"fmt"
	"strings"
)

// Grid owns the rows x cols cells of a board.
// Cells are stored in a flat arena in row-major order: index = row*cols + col.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates a grid of empty cells. Dimensions must be positive.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("board: invalid grid size %dx%d", rows, cols))
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for i := range g.cells {
		g.cells[i].Row = i / cols
		g.cells[i].Col = i % cols
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether c addresses a cell of this grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// index converts a coordinate to an arena index, panicking when out of bounds.
func (g *Grid) index(c Coord) int {
	if !g.InBounds(c) {
		panic(&OutOfBoundsError{At: c, Rows: g.rows, Cols: g.cols})
	}
	return c.Row*g.cols + c.Col
}

// At returns the cell at c. Out-of-bounds access panics with *OutOfBoundsError.
func (g *Grid) At(c Coord) *Cell {
	return &g.cells[g.index(c)]
}

// Get is At(C(row, col)).
func (g *Grid) Get(row, col int) *Cell {
	return g.At(C(row, col))
}

// Swap exchanges the cells at a and b, slot contents and coordinates alike.
// Out-of-bounds coordinates panic; callers validate player input first.
func (g *Grid) Swap(a, b Coord) {
	ia, ib := g.index(a), g.index(b)
	g.cells[ia], g.cells[ib] = g.cells[ib], g.cells[ia]
	g.cells[ia].Row, g.cells[ia].Col = a.Row, a.Col
	g.cells[ib].Row, g.cells[ib].Col = b.Row, b.Col
}

// Neighbor returns the coordinate next to c in direction d,
// or false at the edge of the grid.
func (g *Grid) Neighbor(c Coord, d Dir) (Coord, bool) {
	n := c.Add(d)
	if !g.InBounds(n) {
		return Coord{}, false
	}
	return n, true
}

// Neighbors returns the four neighbors of c indexed by Dir.
// Missing neighbors at the edges are reported as false in ok.
func (g *Grid) Neighbors(c Coord) (out [4]Coord, ok [4]bool) {
	for _, d := range Dirs {
		out[d], ok[d] = g.Neighbor(c, d)
	}
	return out, ok
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// Column returns the coordinates of column col from top to bottom.
func (g *Grid) Column(col int) []Coord {
	out := make([]Coord, g.rows)
	for r := range out {
		out[r] = C(r, col)
	}
	return out
}

// Types returns a copy of the tile types in row-major order.
func (g *Grid) Types() []TileType {
	out := make([]TileType, len(g.cells))
	for i := range g.cells {
		out[i] = g.cells[i].Type
	}
	return out
}

// Powerups returns the coordinates of all powerup cells.
func (g *Grid) Powerups() []Coord {
	var out []Coord
	for i := range g.cells {
		if g.cells[i].Powerup {
			out = append(out, g.cells[i].Coord())
		}
	}
	return out
}

// SameTiles reports whether both grids hold the same tiles and powerups,
// ignoring transient flags.
func (g *Grid) SameTiles(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i].Type != o.cells[i].Type || g.cells[i].Powerup != o.cells[i].Powerup {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// CopyTiles overwrites the tiles and powerup flags of g with those of src.
// Coordinates and transient flags of g are kept. Sizes must match.
func (g *Grid) CopyTiles(src *Grid) {
	if g.rows != src.rows || g.cols != src.cols {
		panic(&InvariantError{Reason: fmt.Sprintf("copy from %dx%d grid into %dx%d", src.rows, src.cols, g.rows, g.cols)})
	}
	for i := range g.cells {
		g.cells[i].Type = src.cells[i].Type
		g.cells[i].Powerup = src.cells[i].Powerup
	}
}

// tileRunes maps tile kinds to the letters used by String and ParseGrid.
const tileRunes = ".ABCDEFGH"

// String renders the grid one row per line: '.' for Empty, 'A'..'H' for the
// eight kinds, lowercase for powerups.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			cell := g.At(C(r, c))
			ch := tileRunes[cell.Type]
			if cell.Powerup && cell.Type != Empty {
				ch += 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}

// ParseGrid builds a grid from rows in the format produced by String.
func ParseGrid(lines ...string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("board: empty grid layout")
	}
	g := NewGrid(len(lines), len(lines[0]))
	for r, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("board: row %d has %d cells, want %d", r, len(line), g.cols)
		}
		for c := 0; c < len(line); c++ {
			ch := line[c]
			cell := g.At(C(r, c))
			switch {
			case ch == '.':
				cell.Type = Empty
			case ch >= 'A' && ch <= 'H':
				cell.Type = TileType(ch-'A') + 1
			case ch >= 'a' && ch <= 'h':
				cell.Type = TileType(ch-'a') + 1
				cell.Powerup = true
			default:
				return nil, fmt.Errorf("board: invalid cell %q at %v", ch, C(r, c))
			}
		}
	}
	return g, nil
}

// MustParseGrid is ParseGrid for fixtures known to be valid.
func MustParseGrid(lines ...string) *Grid {
	g, err := ParseGrid(lines...)
	if err != nil {
		panic(err)
	}
	return g
}
