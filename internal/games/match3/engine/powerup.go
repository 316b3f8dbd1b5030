package engine

import "github.com/vovakirdan/tui-match3/internal/games/match3/board"

// ActivatePowerup taps the powerup at at. Every idle tile of the powerup's
// current kind is cleared, the powerup itself included, and the board
// refills. The clear bypasses match detection and does not advance the chain.
func (e *Engine) ActivatePowerup(at board.Coord) bool {
	if !e.CanInteract() || !e.grid.InBounds(at) {
		return false
	}
	p := e.grid.At(at)
	if !p.Powerup || p.Busy() || p.IsEmpty() {
		return false
	}
	kind := p.Type
	e.bus.Publish(PowerupActivated{At: at, Type: kind})

	var cleared []board.Coord
	e.grid.Each(func(c *board.Cell) {
		if c.Type == kind && !c.Busy() {
			cleared = append(cleared, c.Coord())
		}
	})
	e.clear(cleared)
	e.bus.Publish(PowerupCleared{Type: kind, Cleared: cleared})
	e.scheduleFall()
	return true
}
