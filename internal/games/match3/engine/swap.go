package engine

import "github.com/vovakirdan/tui-match3/internal/games/match3/board"

// SwapOutcome reports what happened to a swap attempt. An accepted swap is
// still pending: whether it matches is decided when Handle completes.
type SwapOutcome struct {
	Accepted bool
	Reason   RejectReason
	Handle   Handle
}

// AttemptSwap starts swapping the tiles at a and b. Invalid attempts are
// ignored without touching the board and reported through the outcome and a
// SwapRejected event.
func (e *Engine) AttemptSwap(a, b board.Coord) SwapOutcome {
	if reason := e.checkSwap(a, b); reason != RejectNone {
		e.bus.Publish(SwapRejected{A: a, B: b, Reason: reason})
		return SwapOutcome{Reason: reason}
	}

	ca, cb := e.grid.At(a), e.grid.At(b)
	ca.State, cb.State = board.Normal, board.Normal
	ca.Swapping, cb.Swapping = true, true
	e.grid.Swap(a, b)

	e.inflight++
	h := e.sched.After(e.cfg.SwapTicks, func() {
		e.inflight--
		e.completeSwap(a, b)
		e.idle()
	})
	e.publishSwapLeg(a, b)
	return SwapOutcome{Accepted: true, Handle: h}
}

func (e *Engine) checkSwap(a, b board.Coord) RejectReason {
	if !e.CanInteract() {
		return RejectLocked
	}
	if !e.grid.InBounds(a) || !e.grid.InBounds(b) {
		return RejectOutOfBounds
	}
	if !a.Adjacent(b) {
		return RejectNotAdjacent
	}
	ca, cb := e.grid.At(a), e.grid.At(b)
	if ca.Powerup || cb.Powerup {
		return RejectPowerup
	}
	if !board.Swappable(ca) || !board.Swappable(cb) {
		return RejectNotReady
	}
	return RejectNone
}

// completeSwap runs when the first leg lands. The tile that started at a now
// sits at b and the other way round.
func (e *Engine) completeSwap(a, b board.Coord) {
	sets := board.Collect(e.grid, []board.Coord{b, a})
	if len(sets) == 0 {
		e.revertSwap(a, b)
		return
	}
	e.grid.At(a).Swapping = false
	e.grid.At(b).Swapping = false
	e.step(sets)
}

func (e *Engine) revertSwap(a, b board.Coord) {
	e.grid.Swap(a, b)
	e.bus.Publish(SwapReverted{A: a, B: b})

	e.inflight++
	e.sched.After(e.cfg.SwapTicks, func() {
		e.inflight--
		for _, at := range []board.Coord{a, b} {
			c := e.grid.At(at)
			c.Swapping = false
			c.State = board.Normal
			e.publishCell(c)
		}
		e.idle()
	})
	e.publishSwapLeg(b, a)
}

// publishSwapLeg announces both tiles travelling between a and b; the tiles
// have already been exchanged in the grid.
func (e *Engine) publishSwapLeg(a, b board.Coord) {
	e.bus.Publish(CellMoved{From: a, To: b, Type: e.grid.At(b).Type, Duration: e.cfg.SwapTicks})
	e.bus.Publish(CellMoved{From: b, To: a, Type: e.grid.At(a).Type, Duration: e.cfg.SwapTicks})
}
