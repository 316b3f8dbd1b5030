package match3

// Snapshot is the observable game state in primitive types, for replays and
// determinism checks.
type Snapshot struct {
	Tick       uint64
	State      string
	Round      int
	RoundTicks int
	CursorRow  int
	CursorCol  int
	Board      string // board.Grid text form
	Lucky      string
	Attack     int
	Defence    int
	Pending    int
	Combo      int
	Hints      int
	Shuffles   int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tickCount,
		State:      g.state,
		Round:      g.round,
		RoundTicks: g.roundTicks,
		CursorRow:  g.cursor.Row,
		CursorCol:  g.cursor.Col,
		Hints:      g.items.Hints,
		Shuffles:   g.items.Shuffles,
	}
	if g.ledger != nil {
		score := g.Score()
		s.Attack, s.Defence = score.Attack, score.Defence
		s.Pending = g.ledger.Pending().Sum()
		s.Lucky = g.ledger.Lucky().String()
	}
	if g.eng != nil && g.eng.Grid() != nil {
		s.Board = g.eng.Grid().String()
		s.Combo = g.eng.Combo()
	}
	return s
}
