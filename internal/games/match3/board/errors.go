package board

import (
	"errors"
	"fmt"
)

// ErrGenerationFailed is matched by every *GenerationError via errors.Is.
var ErrGenerationFailed = errors.New("board: generation failed")

// GenerationError reports that no board without matches and with at least one
// legal move was found within the attempt bound. It almost always means the
// configuration is impossible, e.g. too few tile kinds for the board size.
type GenerationError struct {
	Rows     int
	Cols     int
	Kinds    int
	Attempts int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("board: no playable %dx%d board with %d kinds after %d attempts",
		e.Rows, e.Cols, e.Kinds, e.Attempts)
}

// Is makes errors.Is(err, ErrGenerationFailed) succeed.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// OutOfBoundsError is the panic value raised when a grid is addressed
// outside its dimensions.
type OutOfBoundsError struct {
	At   Coord
	Rows int
	Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("board: coordinate %v outside %dx%d grid", e.At, e.Rows, e.Cols)
}

// InvariantError is the panic value raised when two in-flight operations
// touch the same cell.
type InvariantError struct {
	At     Coord
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("board: invariant violated at %v: %s", e.At, e.Reason)
}
