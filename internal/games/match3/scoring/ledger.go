package scoring

import (
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// Ledger keeps one round's score. It listens to the engine: matches fill a
// pending pool that is multiplied and banked when the active chain ends,
// powerup clears and forced reshuffles are banked directly.
type Ledger struct {
	rules        Rules
	shuffleBonus Stats
	lucky        board.TileType

	pending  Stats
	banked   Stats
	matches  int
	shuffles int
	cleared  int
	bestMult int

	attackBoosted  bool
	defenceBoosted bool
}

// NewLedger creates a ledger using rules. shuffleBonus is paid whenever the
// board had to be reshuffled for lack of moves.
func NewLedger(rules Rules, shuffleBonus Stats) *Ledger {
	return &Ledger{rules: rules, shuffleBonus: shuffleBonus, bestMult: 1}
}

// SetLucky chooses the kind that scores into both pools.
func (l *Ledger) SetLucky(t board.TileType) {
	l.lucky = t
}

// Lucky returns the lucky kind.
func (l *Ledger) Lucky() board.TileType {
	return l.lucky
}

// HandleEvent implements engine.Listener.
func (l *Ledger) HandleEvent(ev engine.Event) {
	switch ev := ev.(type) {
	case engine.Matched:
		rule, ok := l.rules.Lookup(ev.Set.Type)
		if !ok {
			return
		}
		l.pending = l.pending.Add(award(rule, ev.Total, ev.Set.Type == l.lucky))
		l.matches++
	case engine.ChainEnded:
		l.banked = l.banked.Add(l.pending.Scale(ev.Multiplier))
		l.pending = Stats{}
		if ev.Multiplier > l.bestMult {
			l.bestMult = ev.Multiplier
		}
	case engine.PowerupCleared:
		rule, ok := l.rules.Lookup(ev.Type)
		if !ok {
			return
		}
		l.banked = l.banked.Add(award(rule, len(ev.Cleared), ev.Type == l.lucky))
		l.cleared += len(ev.Cleared)
	case engine.Shuffled:
		if ev.Forced {
			l.banked = l.banked.Add(l.shuffleBonus)
			l.shuffles++
		}
	}
}

// Stats returns the banked points. Pending chain points are not included.
func (l *Ledger) Stats() Stats {
	return l.banked
}

// Pending returns points waiting for the active chain to end.
func (l *Ledger) Pending() Stats {
	return l.pending
}

// Matches returns the number of scored match groups this round.
func (l *Ledger) Matches() int {
	return l.matches
}

// ForcedShuffles returns how many times the board ran out of moves.
func (l *Ledger) ForcedShuffles() int {
	return l.shuffles
}

// PowerupTiles returns the number of tiles cleared by powerups.
func (l *Ledger) PowerupTiles() int {
	return l.cleared
}

// BestMultiplier returns the largest chain multiplier banked this round.
func (l *Ledger) BestMultiplier() int {
	return l.bestMult
}

// BoostAttack adds percent of the banked attack, once per round.
func (l *Ledger) BoostAttack(percent int) bool {
	if l.attackBoosted {
		return false
	}
	l.attackBoosted = true
	l.banked.Attack += l.banked.Attack * percent / 100
	return true
}

// BoostDefence adds percent of the banked defence, once per round.
func (l *Ledger) BoostDefence(percent int) bool {
	if l.defenceBoosted {
		return false
	}
	l.defenceBoosted = true
	l.banked.Defence += l.banked.Defence * percent / 100
	return true
}

// NewRound clears the round totals. Rules, bonus and lucky kind are kept.
func (l *Ledger) NewRound() {
	l.pending = Stats{}
	l.banked = Stats{}
	l.matches = 0
	l.shuffles = 0
	l.cleared = 0
	l.bestMult = 1
	l.attackBoosted = false
	l.defenceBoosted = false
}
