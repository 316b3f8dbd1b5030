package engine

import "github.com/vovakirdan/tui-match3/internal/games/match3/board"

// step is one successful resolution: it advances the active chain, reports
// every kind that matched and clears the cells.
func (e *Engine) step(sets []board.MatchSet) {
	combo := e.chainStep()
	for _, s := range sets {
		e.bus.Publish(Matched{Set: s, Total: s.Total(), Combo: combo})
	}
	e.clear(board.Flatten(sets))
	e.scheduleFall()
}

func (e *Engine) clear(coords []board.Coord) {
	board.ClearCells(e.grid, coords)
	for _, at := range coords {
		e.publishCell(e.grid.At(at))
	}
}

// scheduleFall collapses every column with holes after the pre-fall delay.
func (e *Engine) scheduleFall() {
	e.inflight++
	e.sched.After(e.cfg.BeforeFallTicks, func() {
		e.inflight--
		e.fall()
		e.idle()
	})
}

func (e *Engine) fall() {
	for _, col := range board.EmptyColumns(e.grid) {
		moves := board.Collapse(e.grid, col, e.gen.RandomType)
		longest := 0
		for _, m := range moves {
			d := m.Distance() * e.cfg.FallTicksPerRow
			if d > longest {
				longest = d
			}
			e.bus.Publish(CellMoved{From: m.From, To: m.To, Type: e.grid.At(m.To).Type, Duration: d})
		}
		e.scheduleSettle(col, longest)
	}
}

// scheduleSettle waits for the falls in col to land. A column that collapses
// again before landing keeps a single settle, pushed back to cover the
// longest fall.
func (e *Engine) scheduleSettle(col, ticks int) {
	if h, ok := e.settling[col]; ok {
		if r := e.sched.Remaining(h); r > ticks {
			ticks = r
		}
		e.sched.Cancel(h)
	} else {
		e.inflight++
	}
	e.settling[col] = e.sched.After(ticks, func() {
		delete(e.settling, col)
		e.inflight--
		e.settleColumn(col)
		e.idle()
	})
}

// settleColumn clears the falling flags in col and looks for new matches
// among its tiles; any match is the next step of the cascade.
func (e *Engine) settleColumn(col int) {
	board.Settle(e.grid, col)
	if sets := board.Collect(e.grid, e.grid.Column(col)); len(sets) > 0 {
		e.step(sets)
	}
}
