// Package board contains the pure match-3 board model: the grid of cells,
// match detection, hint search, board generation and gravity compaction.
// Nothing in this package schedules time or talks to the outside world;
// the engine package drives it.
package board

import "fmt"

// TileType identifies the kind of tile held by a cell.
// Empty is a transient sentinel used while a cascade refills the board.
type TileType uint8

const (
	Empty TileType = iota
	Chaac
	Indra
	LeiGong
	Odin
	Perun
	Thor
	Zeus
	Raijin
)

// MaxKinds is the number of non-empty tile kinds.
const MaxKinds = 8

var tileNames = [...]string{
	Empty:   "empty",
	Chaac:   "chaac",
	Indra:   "indra",
	LeiGong: "leigong",
	Odin:    "odin",
	Perun:   "perun",
	Thor:    "thor",
	Zeus:    "zeus",
	Raijin:  "raijin",
}

// String returns the lowercase name of the tile kind.
func (t TileType) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return fmt.Sprintf("tile(%d)", t)
}

// Valid reports whether t is a known tile kind (Empty included).
func (t TileType) Valid() bool {
	return t <= Raijin
}

// ParseTileType converts a name produced by String back into a TileType.
func ParseTileType(name string) (TileType, error) {
	for i, n := range tileNames {
		if n == name {
			return TileType(i), nil
		}
	}
	return Empty, fmt.Errorf("board: unknown tile type %q", name)
}

// Kinds returns the first n non-empty tile kinds.
func Kinds(n int) []TileType {
	if n > MaxKinds {
		n = MaxKinds
	}
	out := make([]TileType, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, TileType(i))
	}
	return out
}

// CellState is the interaction state of a cell. It never affects matching.
type CellState uint8

const (
	Normal CellState = iota
	Selected
)

func (s CellState) String() string {
	if s == Selected {
		return "selected"
	}
	return "normal"
}

// Dir is one of the four axis-aligned directions.
type Dir uint8

const (
	Right Dir = iota
	Left
	Up
	Down
)

// Dirs lists the directions in the order matches and hints are searched.
var Dirs = [4]Dir{Right, Left, Up, Down}

// Delta returns the row and column offsets for d. Row 0 is the top of the board.
func (d Dir) Delta() (dRow, dCol int) {
	switch d {
	case Right:
		return 0, 1
	case Left:
		return 0, -1
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the direction pointing the other way.
func (d Dir) Opposite() Dir {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	default:
		return Up
	}
}

// Horizontal reports whether d runs along a row.
func (d Dir) Horizontal() bool {
	return d == Right || d == Left
}

func (d Dir) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "?"
}

// Roller is the source of randomness used by the generator and the cascade.
// *math/rand.Rand satisfies it.
type Roller interface {
	Intn(n int) int
}
