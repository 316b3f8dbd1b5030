package engine

import "github.com/vovakirdan/tui-match3/internal/games/match3/board"

// RequestShuffle rerolls the board on player request. The new layout is
// computed immediately, so a generation failure is returned here; it is
// applied after the pre-shuffle delay.
func (e *Engine) RequestShuffle() error {
	if !e.CanInteract() {
		return ErrBusy
	}
	return e.beginShuffle(false)
}

// beginShuffle locks the board, flushes the chain and schedules the reroll.
// Forced shuffles happen when the board ran out of legal moves.
func (e *Engine) beginShuffle(forced bool) error {
	next := e.grid.Clone()
	if err := e.gen.Reshuffle(next); err != nil {
		return err
	}

	e.FlushChain()
	e.locked = true
	e.grid.Each(func(c *board.Cell) { c.ClearFlags() })
	e.sched.After(e.cfg.BeforeShuffleTicks, func() {
		e.grid.CopyTiles(next)
		e.publishBoard()
		e.bus.Publish(Shuffled{Forced: forced})
		e.animateBoard(-e.grid.Rows(), 0, e.cfg.BoardRespawnTicks, e.unlock)
	})
	return nil
}
