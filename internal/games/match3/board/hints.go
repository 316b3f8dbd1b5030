package board

import "github.com/zyedidia/generic/mapset"

// PreMatch describes one hypothetical swap of a cell with a neighbor that
// would produce at least one match.
type PreMatch struct {
	Dir      Dir
	Neighbor Coord
	Matches  []MatchSet
}

// Swappable reports whether a cell may be part of a player swap.
func Swappable(c *Cell) bool {
	return c.IsReady() && !c.Swapping && !c.Matching && !c.Powerup
}

// FindPreMatches swaps at with each of its four neighbors in turn, runs match
// detection on both moved tiles and swaps back. The grid is left unchanged.
func FindPreMatches(g *Grid, at Coord) []PreMatch {
	if !Swappable(g.At(at)) {
		return nil
	}
	var out []PreMatch
	for _, d := range Dirs {
		n, ok := g.Neighbor(at, d)
		if !ok || !Swappable(g.At(n)) {
			continue
		}
		g.Swap(at, n)
		sets := Collect(g, []Coord{n, at})
		g.Swap(at, n)
		if len(sets) > 0 {
			out = append(out, PreMatch{Dir: d, Neighbor: n, Matches: sets})
		}
	}
	return out
}

// HintSet is the set of coordinates that currently have a legal move.
type HintSet struct {
	members mapset.Set[Coord]
	order   []Coord
}

// NewHintSet returns an empty set.
func NewHintSet() HintSet {
	return HintSet{members: mapset.New[Coord]()}
}

func (h *HintSet) add(c Coord) {
	if h.members.Has(c) {
		return
	}
	h.members.Put(c)
	h.order = append(h.order, c)
}

// Contains reports whether c is a hint.
func (h HintSet) Contains(c Coord) bool {
	return h.order != nil && h.members.Has(c)
}

// Len returns the number of hinted coordinates.
func (h HintSet) Len() int {
	return len(h.order)
}

// Coords returns the hints in row-major order.
func (h HintSet) Coords() []Coord {
	out := make([]Coord, len(h.order))
	copy(out, h.order)
	return out
}

// FindHints scans the board for playable cells. Cells that are moving or
// swapping are never hints; otherwise powerups always are, and any other
// ready cell is when some neighbor swap would match.
func FindHints(g *Grid) HintSet {
	hints := NewHintSet()
	for i := range g.cells {
		c := &g.cells[i]
		if c.Moving || c.Swapping || c.IsEmpty() {
			continue
		}
		if c.Powerup {
			hints.add(c.Coord())
			continue
		}
		if len(FindPreMatches(g, c.Coord())) > 0 {
			hints.add(c.Coord())
		}
	}
	return hints
}
