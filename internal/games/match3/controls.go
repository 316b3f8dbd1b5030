package match3

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// handleInput applies one frame of player actions.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Empty() {
		return
	}
	g.idleTicks = 0

	rows, cols := g.cfg.Board.Rows, g.cfg.Board.Columns
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Wrap(g.cursor.Row-1, rows)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Wrap(g.cursor.Row+1, rows)
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Wrap(g.cursor.Col-1, cols)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Wrap(g.cursor.Col+1, cols)
	}

	if in.Has(core.ActionSelect) {
		g.selectAtCursor()
	}
	if in.Has(core.ActionHint) {
		g.useHint()
	}
	if in.Has(core.ActionShuffle) {
		g.useShuffle()
	}
	if in.Has(core.ActionBoostAttack) {
		g.useBoost(true)
	}
	if in.Has(core.ActionBoostDefence) {
		g.useBoost(false)
	}
}

// selectAtCursor implements the tap-tap swap: the first tap picks a tile,
// a tap on a neighbor swaps, a tap elsewhere moves the pick. Tapping a
// powerup with nothing picked fires it.
func (g *Game) selectAtCursor() {
	e := g.eng
	if !e.CanInteract() {
		g.status = "Wait for the board to settle"
		return
	}
	at := g.cursor
	picked, hasPick := e.Selected()

	switch {
	case !hasPick && e.Grid().At(at).Powerup:
		kind := e.Grid().At(at).Type
		if e.ActivatePowerup(at) {
			g.status = fmt.Sprintf("Powerup fired: %s", TileName(kind))
		}
	case !hasPick:
		e.Select(at)
	case picked == at:
		e.ClearSelection()
	case picked.Adjacent(at):
		e.ClearSelection()
		out := e.AttemptSwap(picked, at)
		if !out.Accepted {
			g.status = fmt.Sprintf("Swap rejected: %s", out.Reason)
		}
	default:
		if !e.Select(at) {
			e.ClearSelection()
		}
	}
}

func (g *Game) useHint() {
	if g.items.Hints <= 0 {
		g.status = "No hints left"
		return
	}
	at, ok := g.eng.RequestHint()
	if !ok {
		g.status = "No hint available right now"
		return
	}
	g.items.UseHint()
	g.hintAt = at
	g.hintTicks = engine.Ticks(g.cfg.Timings.HintFlicker, g.runtime.TickRate)
	g.status = fmt.Sprintf("Try %s", at)
}

func (g *Game) useShuffle() {
	if g.items.Shuffles <= 0 {
		g.status = "No shuffles left"
		return
	}
	if err := g.eng.RequestShuffle(); err != nil {
		if errors.Is(err, engine.ErrBusy) {
			g.status = "Wait for the board to settle"
			return
		}
		g.fail(err)
		return
	}
	g.items.UseShuffle()
	g.status = "Shuffling"
}

func (g *Game) useBoost(attack bool) {
	pct := g.cfg.Player.BoostPercent
	switch {
	case attack && g.items.AttackBoosts > 0 && g.ledger.BoostAttack(pct):
		g.items.UseAttackBoost()
		g.status = fmt.Sprintf("Attack +%d%%", pct)
	case !attack && g.items.DefenceBoosts > 0 && g.ledger.BoostDefence(pct):
		g.items.UseDefenceBoost()
		g.status = fmt.Sprintf("Defence +%d%%", pct)
	default:
		g.status = "Boost unavailable"
	}
}

// hintFlicker reports whether hinted cells are highlighted on this tick.
// A requested hint stays lit; idle hints blink after the idle delay.
func (g *Game) hintFlicker(at board.Coord) bool {
	if g.hintTicks > 0 && at == g.hintAt {
		return true
	}
	rate := g.runtime.TickRate
	idle := engine.Ticks(g.cfg.Timings.HintIdle, rate)
	flicker := engine.Ticks(g.cfg.Timings.HintFlicker, rate)
	if idle <= 0 || flicker <= 0 {
		return false
	}
	phase := g.idleTicks % (idle + flicker)
	if phase < idle {
		return false
	}
	blink := max(rate/4, 1)
	return (phase/blink)%2 == 0 && g.eng.ContainsHint(at)
}

// AutoMove plays the first hinted move: a powerup is fired, any other cell
// is swapped toward its first matching neighbor. It reports whether a move
// was made.
func AutoMove(e *engine.Engine) bool {
	at, ok := e.RequestHint()
	if !ok {
		return false
	}
	g := e.Grid()
	if g.At(at).Powerup {
		return e.ActivatePowerup(at)
	}
	moves := board.FindPreMatches(g, at)
	if len(moves) == 0 {
		return false
	}
	return e.AttemptSwap(at, moves[0].Neighbor).Accepted
}
