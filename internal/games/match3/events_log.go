package match3

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// EventLogger forwards engine events to a logger at debug level.
// Per-cell events are skipped; they fire for every tile on every refresh.
type EventLogger struct {
	logger *log.Logger
}

// NewEventLogger creates a listener writing to logger.
func NewEventLogger(logger *log.Logger) *EventLogger {
	return &EventLogger{logger: logger}
}

// HandleEvent implements engine.Listener.
func (l *EventLogger) HandleEvent(ev engine.Event) {
	switch ev := ev.(type) {
	case engine.Matched:
		l.logger.Debug("matched", "type", ev.Set.Type, "cells", ev.Set.Len(), "total", ev.Total, "combo", ev.Combo)
	case engine.ChainEnded:
		l.logger.Debug("chain ended", "combo", ev.Combo, "multiplier", ev.Multiplier)
	case engine.SwapRejected:
		l.logger.Debug("swap rejected", "a", ev.A, "b", ev.B, "reason", ev.Reason)
	case engine.SwapReverted:
		l.logger.Debug("swap reverted", "a", ev.A, "b", ev.B)
	case engine.PowerupActivated:
		l.logger.Debug("powerup", "at", ev.At, "type", ev.Type)
	case engine.PowerupCleared:
		l.logger.Debug("powerup cleared", "type", ev.Type, "cells", len(ev.Cleared))
	case engine.Shuffled:
		l.logger.Debug("shuffled", "forced", ev.Forced)
	case engine.BoardAnimated:
		l.logger.Debug("board animated", "from", ev.StartRow, "to", ev.EndRow, "ticks", ev.Duration)
	case engine.HintsUpdated:
		l.logger.Debug("hints", "count", ev.Count)
	}
}
