package engine

import "github.com/vovakirdan/tui-match3/internal/games/match3/board"

// Event is a notification published by the engine to its listeners.
// The set of events is closed; listeners switch on the concrete type.
type Event interface {
	engineEvent()
}

// CellChanged is sent when a cell's tile, powerup flag or interaction state
// changes in place.
type CellChanged struct {
	At      board.Coord
	Type    board.TileType
	Powerup bool
	State   board.CellState
}

func (CellChanged) engineEvent() {}

// CellMoved is sent when a tile starts travelling to a new slot.
// Fresh tiles come from above the board, so From.Row may be negative.
type CellMoved struct {
	From     board.Coord
	To       board.Coord
	Type     board.TileType
	Duration int // ticks
}

func (CellMoved) engineEvent() {}

// BoardAnimated is sent when the whole board slides between two vertical
// offsets, measured in rows. The engine resumes when Handle completes.
type BoardAnimated struct {
	Handle   Handle
	StartRow int
	EndRow   int
	Duration int // ticks
}

func (BoardAnimated) engineEvent() {}

// SwapRejected is sent when a swap attempt is ignored.
type SwapRejected struct {
	A, B   board.Coord
	Reason RejectReason
}

func (SwapRejected) engineEvent() {}

// SwapReverted is sent when an accepted swap produced no match and the two
// tiles travel back.
type SwapReverted struct {
	A, B board.Coord
}

func (SwapReverted) engineEvent() {}

// Matched is sent once per tile kind for every resolution step.
// Total includes the shape bonus; Combo is the active chain after this step.
type Matched struct {
	Set   board.MatchSet
	Total int
	Combo int
}

func (Matched) engineEvent() {}

// ChainEnded is sent when the active chain times out or is flushed.
// Multiplier is 1 unless the chain grew past one step.
type ChainEnded struct {
	Combo      int
	Multiplier int
}

func (ChainEnded) engineEvent() {}

// PowerupActivated is sent when the player taps a powerup.
type PowerupActivated struct {
	At   board.Coord
	Type board.TileType
}

func (PowerupActivated) engineEvent() {}

// PowerupCleared is sent after a powerup removed every tile of one kind.
type PowerupCleared struct {
	Type    board.TileType
	Cleared []board.Coord
}

func (PowerupCleared) engineEvent() {}

// Shuffled is sent when a new layout has been applied to the board.
// Forced is set when the board ran out of moves.
type Shuffled struct {
	Forced bool
}

func (Shuffled) engineEvent() {}

// HintsUpdated is sent every time the legal-move scan is refreshed.
type HintsUpdated struct {
	Count int
}

func (HintsUpdated) engineEvent() {}

// Settled is sent when the board is idle and accepts input again.
type Settled struct{}

func (Settled) engineEvent() {}

// RejectReason explains why a swap attempt was ignored.
type RejectReason int

const (
	RejectNone RejectReason = iota
	RejectLocked
	RejectOutOfBounds
	RejectNotAdjacent
	RejectNotReady
	RejectPowerup
)

func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectLocked:
		return "board locked"
	case RejectOutOfBounds:
		return "out of bounds"
	case RejectNotAdjacent:
		return "not adjacent"
	case RejectNotReady:
		return "cell not ready"
	case RejectPowerup:
		return "powerup involved"
	default:
		return "unknown"
	}
}
