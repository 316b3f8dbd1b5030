package board

// Cell is one slot of the board. Cells live in the grid's arena for the whole
// session; destroying a tile means setting Type to Empty.
type Cell struct {
	Type    TileType
	Powerup bool
	State   CellState

	// Transient flags owned by the engine.
	Swapping    bool
	Moving      bool
	Matching    bool
	ReadyToMove bool

	// Row and Col always equal the cell's slot in the grid.
	Row int
	Col int
}

// Coord returns the cell's current position.
func (c *Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}

// IsEmpty reports whether the slot currently holds no tile.
func (c *Cell) IsEmpty() bool {
	return c.Type == Empty
}

// IsReady reports whether the cell can take part in a new player action:
// it holds a tile and is not falling.
func (c *Cell) IsReady() bool {
	return !c.Moving && c.Type != Empty
}

// Busy reports whether any transient flag is set.
func (c *Cell) Busy() bool {
	return c.Swapping || c.Moving || c.Matching
}

// ClearFlags resets every transient flag and the interaction state.
func (c *Cell) ClearFlags() {
	c.Swapping = false
	c.Moving = false
	c.Matching = false
	c.ReadyToMove = false
	c.State = Normal
}
