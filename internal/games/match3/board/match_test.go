package board_test

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// crossLayout holds exactly one cross of Chaac tiles centered on (3,3).
var crossLayout = []string{
	"BCBCBCB",
	"DEDEDED",
	"BCBABCB",
	"DEAAAED",
	"BCBABCB",
	"DEDEDED",
	"BCBCBCB",
}

func TestFindMatchesCross(t *testing.T) {
	g := board.MustParseGrid(crossLayout...)

	set := board.FindMatches(g, board.C(3, 3))

	if set.Len() != 5 {
		t.Fatalf("cross match size = %d, want 5 (%v)", set.Len(), set.Cells)
	}
	if set.Total() != 7 {
		t.Errorf("cross match total = %d, want 7", set.Total())
	}
	if !set.Horizontal || !set.Vertical {
		t.Errorf("axes = h:%v v:%v, want both", set.Horizontal, set.Vertical)
	}
	if set.Type != board.Chaac {
		t.Errorf("type = %v, want chaac", set.Type)
	}
	for _, c := range []board.Coord{board.C(3, 2), board.C(3, 3), board.C(3, 4), board.C(2, 3), board.C(4, 3)} {
		if !set.Contains(c) {
			t.Errorf("cross match missing %v", c)
		}
	}
}

func TestFindMatchesShapes(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		origin board.Coord
		size   int
		total  int
	}{
		{
			name:   "horizontal three from the middle",
			layout: []string{"BAAAB", "CDCDC"},
			origin: board.C(0, 2),
			size:   3,
			total:  4,
		},
		{
			name:   "horizontal three from the end",
			layout: []string{"BAAAB", "CDCDC"},
			origin: board.C(0, 1),
			size:   3,
			total:  4,
		},
		{
			name:   "vertical three",
			layout: []string{"AB", "AC", "AB"},
			origin: board.C(0, 0),
			size:   3,
			total:  4,
		},
		{
			name:   "line of four",
			layout: []string{"AAAAB"},
			origin: board.C(0, 0),
			size:   4,
			total:  5,
		},
		{
			name:   "L shape from the corner",
			layout: []string{"AAA", "ABC", "ACB"},
			origin: board.C(0, 0),
			size:   5,
			total:  7,
		},
		{
			name:   "L shape from an arm only sees its own line",
			layout: []string{"AAA", "ABC", "ACB"},
			origin: board.C(0, 2),
			size:   3,
			total:  4,
		},
		{
			name:   "pair never matches",
			layout: []string{"AAB", "CDC"},
			origin: board.C(0, 0),
			size:   0,
			total:  0,
		},
		{
			name:   "two pairs across the origin axis do not combine",
			layout: []string{"BAB", "CAC", "BDB"},
			origin: board.C(0, 1),
			size:   0,
			total:  0,
		},
		{
			name:   "empty origin",
			layout: []string{".AAA"},
			origin: board.C(0, 0),
			size:   0,
			total:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := board.MustParseGrid(tt.layout...)
			set := board.FindMatches(g, tt.origin)
			if set.Len() != tt.size {
				t.Errorf("size = %d, want %d (%v)", set.Len(), tt.size, set.Cells)
			}
			if set.Total() != tt.total {
				t.Errorf("total = %d, want %d", set.Total(), tt.total)
			}
			if !set.Empty() && !set.Contains(tt.origin) {
				t.Error("a non-empty match must contain its origin")
			}
		})
	}
}

func TestFindMatchesExcludesPowerups(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		origin board.Coord
	}{
		{"powerup origin", []string{"aAA"}, board.C(0, 0)},
		{"powerup breaks the run", []string{"AaA"}, board.C(0, 0)},
		{"powerup at the end of a pair", []string{"AAa"}, board.C(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := board.MustParseGrid(tt.layout...)
			set := board.FindMatches(g, tt.origin)
			if !set.Empty() {
				t.Errorf("expected no match, got %v", set.Cells)
			}
		})
	}
}

func TestFindMatchesIgnoresMovingCells(t *testing.T) {
	g := board.MustParseGrid("AAAB")
	g.At(board.C(0, 2)).Moving = true

	if set := board.FindMatches(g, board.C(0, 0)); !set.Empty() {
		t.Errorf("moving cell should not extend a run, got %v", set.Cells)
	}
	if set := board.FindMatches(g, board.C(0, 2)); !set.Empty() {
		t.Errorf("moving cell should not be an origin, got %v", set.Cells)
	}
}

func TestCollectCountsEachRunOnce(t *testing.T) {
	g := board.MustParseGrid(
		"AB",
		"AC",
		"AB",
		"CD",
	)

	sets := board.Collect(g, g.Column(0))

	if len(sets) != 1 {
		t.Fatalf("groups = %d, want 1", len(sets))
	}
	if sets[0].Len() != 3 || sets[0].Total() != 4 {
		t.Errorf("vertical run collected as size %d total %d, want 3 and 4", sets[0].Len(), sets[0].Total())
	}
}

func TestCollectGroupsByKind(t *testing.T) {
	g := board.MustParseGrid(
		"AAAC",
		"BDCB",
		"BBBD",
	)

	sets := board.Collect(g, []board.Coord{board.C(0, 0), board.C(2, 0), board.C(0, 1)})

	if len(sets) != 2 {
		t.Fatalf("groups = %d, want 2", len(sets))
	}
	if sets[0].Type != board.Chaac || sets[1].Type != board.Indra {
		t.Errorf("group order = %v, %v; want chaac then indra", sets[0].Type, sets[1].Type)
	}
	if got := len(board.Flatten(sets)); got != 6 {
		t.Errorf("flattened cells = %d, want 6", got)
	}
}

func TestMatchSetUnion(t *testing.T) {
	a := board.MatchSet{Type: board.Thor, Cells: []board.Coord{board.C(0, 0), board.C(0, 1), board.C(0, 2)}, Horizontal: true, Bonus: 1}
	b := board.MatchSet{Type: board.Thor, Cells: []board.Coord{board.C(0, 2), board.C(1, 2), board.C(2, 2)}, Vertical: true, Bonus: 1}

	u := a.Union(b)

	if u.Len() != 5 || u.Total() != 7 {
		t.Errorf("union size %d total %d, want 5 and 7", u.Len(), u.Total())
	}
	if u.Type != board.Thor || !u.Horizontal || !u.Vertical {
		t.Errorf("union = %+v", u)
	}

	mixed := a.Union(board.MatchSet{Type: board.Zeus, Cells: []board.Coord{board.C(5, 5)}})
	if mixed.Type != board.Empty {
		t.Errorf("mixed union type = %v, want empty", mixed.Type)
	}
}

func TestHasAnyMatch(t *testing.T) {
	if !board.HasAnyMatch(board.MustParseGrid(crossLayout...)) {
		t.Error("cross layout should contain a match")
	}
	if board.HasAnyMatch(board.MustParseGrid("ABA", "BAB", "ABA")) {
		t.Error("checkerboard should not contain a match")
	}
	if board.HasAnyMatch(board.MustParseGrid("aaa", "BAB")) {
		t.Error("a row of powerups is not a match")
	}
}
