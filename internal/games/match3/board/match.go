package board

// MatchSet is the result of one match-detection pass: a duplicate-free set of
// coordinates of a single tile kind, which axes contributed an accepted run,
// and the shape bonus.
type MatchSet struct {
	Type       TileType
	Cells      []Coord
	Horizontal bool
	Vertical   bool
	Bonus      int
}

// Empty reports whether nothing matched.
func (m MatchSet) Empty() bool {
	return len(m.Cells) == 0
}

// Len returns the number of matched cells.
func (m MatchSet) Len() int {
	return len(m.Cells)
}

// Total is the scoring count: matched cells plus one per contributing axis.
func (m MatchSet) Total() int {
	return len(m.Cells) + m.Bonus
}

// Contains reports whether c is part of the set.
func (m MatchSet) Contains(c Coord) bool {
	for _, x := range m.Cells {
		if x == c {
			return true
		}
	}
	return false
}

// Union merges o into m. Cells are deduplicated, axes are OR-ed and bonuses
// add up. The type is kept only when both sides agree.
func (m MatchSet) Union(o MatchSet) MatchSet {
	if m.Empty() {
		return o
	}
	if o.Empty() {
		return m
	}
	out := MatchSet{
		Type:       m.Type,
		Cells:      make([]Coord, len(m.Cells), len(m.Cells)+len(o.Cells)),
		Horizontal: m.Horizontal || o.Horizontal,
		Vertical:   m.Vertical || o.Vertical,
		Bonus:      m.Bonus + o.Bonus,
	}
	if m.Type != o.Type {
		out.Type = Empty
	}
	copy(out.Cells, m.Cells)
	for _, c := range o.Cells {
		if !m.Contains(c) {
			out.Cells = append(out.Cells, c)
		}
	}
	return out
}

// FindMatches returns every cell forming a run of three or more identical
// tiles through origin, along the row and along the column.
func FindMatches(g *Grid, origin Coord) MatchSet {
	return findMatches(g, origin, nil)
}

// findMatches walks outward from origin in all four directions. Cells already
// present in collected never extend a run, so merging several passes never
// counts a cell twice.
func findMatches(g *Grid, origin Coord, collected map[Coord]bool) MatchSet {
	cell := g.At(origin)
	if !cell.IsReady() || cell.Powerup || collected[origin] {
		return MatchSet{}
	}

	var runs [2][]Coord // horizontal, vertical
	for _, d := range Dirs {
		axis := 1
		if d.Horizontal() {
			axis = 0
		}
		runs[axis] = walk(g, origin, d, cell.Type, collected, runs[axis])
	}

	set := MatchSet{Type: cell.Type}
	accepted := 0
	if len(runs[0]) >= 2 {
		set.Horizontal = true
		accepted += len(runs[0])
	}
	if len(runs[1]) >= 2 {
		set.Vertical = true
		accepted += len(runs[1])
	}
	if accepted == 0 {
		return MatchSet{}
	}

	set.Cells = make([]Coord, 0, accepted+1)
	set.Cells = append(set.Cells, origin)
	if set.Horizontal {
		set.Cells = append(set.Cells, runs[0]...)
	}
	if set.Vertical {
		set.Cells = append(set.Cells, runs[1]...)
	}
	if accepted >= 2 {
		if set.Horizontal {
			set.Bonus++
		}
		if set.Vertical {
			set.Bonus++
		}
	}
	return set
}

// walk appends to run the consecutive cells of type t found from origin
// towards d.
func walk(g *Grid, origin Coord, d Dir, t TileType, collected map[Coord]bool, run []Coord) []Coord {
	for at, ok := g.Neighbor(origin, d); ok; at, ok = g.Neighbor(at, d) {
		n := g.At(at)
		if n.Powerup || !n.IsReady() || n.Type != t || collected[at] {
			break
		}
		run = append(run, at)
	}
	return run
}

// Collect runs match detection from each origin in turn and merges the
// results into one set per tile kind, in the order kinds were first found.
// Origins already covered by an earlier result are skipped.
func Collect(g *Grid, origins []Coord) []MatchSet {
	collected := make(map[Coord]bool)
	var groups []MatchSet
	for _, o := range origins {
		set := findMatches(g, o, collected)
		if set.Empty() {
			continue
		}
		for _, c := range set.Cells {
			collected[c] = true
		}
		merged := false
		for i := range groups {
			if groups[i].Type == set.Type {
				groups[i] = groups[i].Union(set)
				merged = true
				break
			}
		}
		if !merged {
			groups = append(groups, set)
		}
	}
	return groups
}

// Flatten returns the cells of all sets in order.
func Flatten(sets []MatchSet) []Coord {
	var out []Coord
	for _, s := range sets {
		out = append(out, s.Cells...)
	}
	return out
}

// HasAnyMatch reports whether any non-powerup cell currently sits in a run
// of three or more.
func HasAnyMatch(g *Grid) bool {
	for i := range g.cells {
		c := &g.cells[i]
		if c.Powerup {
			continue
		}
		if !FindMatches(g, c.Coord()).Empty() {
			return true
		}
	}
	return false
}
