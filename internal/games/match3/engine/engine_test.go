package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

type recorder struct {
	events []Event
}

func (r *recorder) HandleEvent(ev Event) {
	r.events = append(r.events, ev)
}

func eventsOf[T Event](r *recorder) []T {
	var out []T
	for _, ev := range r.events {
		if t, ok := ev.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

func testConfig() Config {
	cfg := DefaultConfig(10)
	cfg.Board.Kinds = 5
	cfg.Board.PowerupChance = 0
	cfg.PowerupSwitchTicks = 0
	return cfg
}

// newTestEngine returns an idle engine playing the given layout.
func newTestEngine(t *testing.T, cfg Config, layout ...string) (*Engine, *recorder) {
	t.Helper()
	e := New(cfg, rand.New(rand.NewSource(1)))
	rec := &recorder{}
	e.Subscribe(rec)
	e.grid = board.MustParseGrid(layout...)
	e.started = true
	e.locked = false
	e.refreshHints()
	return e, rec
}

func tickN(t *testing.T, e *Engine, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := e.Tick(); err != nil {
			t.Fatalf("Tick() error: %v", err)
		}
	}
}

// checkSettled asserts the board is idle and playable.
func checkSettled(t *testing.T, e *Engine) {
	t.Helper()
	e.Grid().Each(func(c *board.Cell) {
		if c.IsEmpty() {
			t.Errorf("cell %v is empty after settle", c.Coord())
		}
		if c.Busy() || c.ReadyToMove {
			t.Errorf("cell %v still flagged after settle: %+v", c.Coord(), *c)
		}
	})
	if e.Busy() {
		t.Error("engine still busy")
	}
	if board.HasAnyMatch(e.Grid()) {
		t.Errorf("settled board holds an unresolved match:\n%s", e.Grid())
	}
	if e.Hints().Len() == 0 {
		t.Errorf("settled board has no legal move:\n%s", e.Grid())
	}
}

var oneMove = []string{
	"AAB",
	"CDA",
	"BCD",
}

func TestTickBeforeStart(t *testing.T) {
	e := New(testConfig(), rand.New(rand.NewSource(1)))
	if err := e.Tick(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Tick() = %v, want ErrNotStarted", err)
	}
	if e.CanInteract() {
		t.Error("engine accepts input before Start")
	}
}

func TestStartPlaysEntryAnimation(t *testing.T) {
	e := New(testConfig(), rand.New(rand.NewSource(3)))
	rec := &recorder{}
	e.Subscribe(rec)

	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	if e.CanInteract() {
		t.Error("input must be locked during the entry animation")
	}
	anims := eventsOf[BoardAnimated](rec)
	if len(anims) != 1 || anims[0].Duration != e.Config().BoardSpawnTicks || anims[0].EndRow != 0 {
		t.Fatalf("entry animation = %+v", anims)
	}

	n, err := e.RunUntilIdle(100)
	if err != nil {
		t.Fatal(err)
	}
	if n != e.Config().BoardSpawnTicks {
		t.Errorf("unlocked after %d ticks, want %d", n, e.Config().BoardSpawnTicks)
	}
	if len(eventsOf[Settled](rec)) != 1 {
		t.Error("expected one Settled event")
	}
	checkSettled(t, e)
}

func TestSwapWithoutMatchReverts(t *testing.T) {
	e, rec := newTestEngine(t, testConfig(), oneMove...)
	before := e.Grid().Clone()
	a, b := board.C(2, 0), board.C(2, 1)

	out := e.AttemptSwap(a, b)
	if !out.Accepted {
		t.Fatalf("swap rejected: %v", out.Reason)
	}
	if e.CanInteract() {
		t.Error("input must be locked while a swap is in flight")
	}
	if !e.Grid().At(a).Swapping || !e.Grid().At(b).Swapping {
		t.Error("both cells should be swapping")
	}

	tickN(t, e, e.Config().SwapTicks)
	if len(eventsOf[SwapReverted](rec)) != 1 {
		t.Fatal("expected the swap to revert after the first leg")
	}

	if _, err := e.RunUntilIdle(50); err != nil {
		t.Fatal(err)
	}
	if !e.Grid().SameTiles(before) {
		t.Errorf("board after revert:\n%s\nwant:\n%s", e.Grid(), before)
	}
	if len(eventsOf[Matched](rec)) != 0 {
		t.Error("a reverted swap must not score")
	}
	checkSettled(t, e)
}

func TestSwapRejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *Engine)
		a, b  board.Coord
		want  RejectReason
	}{
		{"not adjacent", nil, board.C(0, 0), board.C(0, 2), RejectNotAdjacent},
		{"diagonal", nil, board.C(0, 0), board.C(1, 1), RejectNotAdjacent},
		{"out of bounds", nil, board.C(0, 2), board.C(0, 3), RejectOutOfBounds},
		{"powerup", func(e *Engine) { e.grid.At(board.C(1, 1)).Powerup = true }, board.C(0, 1), board.C(1, 1), RejectPowerup},
		{"moving cell", func(e *Engine) { e.grid.At(board.C(2, 2)).Moving = true }, board.C(1, 2), board.C(2, 2), RejectNotReady},
		{"matching cell", func(e *Engine) { e.grid.At(board.C(2, 2)).Matching = true }, board.C(1, 2), board.C(2, 2), RejectNotReady},
		{"locked board", func(e *Engine) { e.locked = true }, board.C(1, 2), board.C(0, 2), RejectLocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newTestEngine(t, testConfig(), oneMove...)
			if tt.setup != nil {
				tt.setup(e)
			}
			before := e.Grid().String()

			out := e.AttemptSwap(tt.a, tt.b)

			if out.Accepted || out.Reason != tt.want {
				t.Errorf("outcome = %+v, want rejection %v", out, tt.want)
			}
			if e.Grid().String() != before {
				t.Errorf("rejected swap changed the board:\n%s", e.Grid())
			}
			if e.Pending() != 0 {
				t.Error("rejected swap scheduled work")
			}
			rej := eventsOf[SwapRejected](rec)
			if len(rej) != 1 || rej[0].Reason != tt.want {
				t.Errorf("SwapRejected events = %+v", rej)
			}
		})
	}
}

func TestSwapWithMatchResolves(t *testing.T) {
	e, rec := newTestEngine(t, testConfig(), oneMove...)

	out := e.AttemptSwap(board.C(1, 2), board.C(0, 2))
	if !out.Accepted {
		t.Fatalf("swap rejected: %v", out.Reason)
	}
	tickN(t, e, e.Config().SwapTicks)

	matched := eventsOf[Matched](rec)
	if len(matched) != 1 {
		t.Fatalf("Matched events = %d, want 1", len(matched))
	}
	if matched[0].Total != 4 || matched[0].Combo != 0 || matched[0].Set.Type != board.Chaac {
		t.Errorf("Matched = %+v, want three chaac tiles, total 4, combo 0", matched[0])
	}
	for c := 0; c < 3; c++ {
		if !e.Grid().At(board.C(0, c)).IsEmpty() {
			t.Errorf("matched cell (0,%d) not cleared", c)
		}
	}
	if e.Combo() != 0 {
		t.Errorf("Combo() = %d, want 0", e.Combo())
	}

	if _, err := e.RunUntilIdle(500); err != nil {
		t.Fatal(err)
	}
	checkSettled(t, e)

	tickN(t, e, e.Config().ChainTimeoutTicks)
	if len(eventsOf[ChainEnded](rec)) == 0 {
		t.Error("chain never ended")
	}
	if e.Combo() != NoChain {
		t.Errorf("Combo() = %d after timeout, want NoChain", e.Combo())
	}
}

func TestCascadeTerminates(t *testing.T) {
	cfg := testConfig()
	cfg.Board = board.DefaultGenParams()
	cfg.Board.Kinds = 6
	cfg.Board.PowerupChance = 50
	cfg.PowerupSwitchTicks = 3

	for _, seed := range []int64{1, 7, 21, 1984} {
		e := New(cfg, rand.New(rand.NewSource(seed)))
		if err := e.Start(); err != nil {
			t.Fatalf("seed %d: Start() error: %v", seed, err)
		}
		if _, err := e.RunUntilIdle(100); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		for move := 0; move < 25; move++ {
			at, ok := e.RequestHint()
			if !ok {
				t.Fatalf("seed %d move %d: no hint on a settled board", seed, move)
			}
			if e.Grid().At(at).Powerup {
				if !e.ActivatePowerup(at) {
					t.Fatalf("seed %d move %d: powerup at %v refused", seed, move, at)
				}
			} else {
				pre := board.FindPreMatches(e.Grid(), at)
				if len(pre) == 0 {
					t.Fatalf("seed %d move %d: hint %v has no pre-match", seed, move, at)
				}
				if out := e.AttemptSwap(at, pre[0].Neighbor); !out.Accepted {
					t.Fatalf("seed %d move %d: hinted swap rejected: %v", seed, move, out.Reason)
				}
			}

			if _, err := e.RunUntilIdle(5000); err != nil {
				t.Fatalf("seed %d move %d: cascade did not settle: %v", seed, move, err)
			}
			checkSettled(t, e)
		}
	}
}

func TestResetCancelsContinuations(t *testing.T) {
	e, rec := newTestEngine(t, testConfig(), oneMove...)

	e.AttemptSwap(board.C(1, 2), board.C(0, 2))
	tickN(t, e, e.Config().SwapTicks)
	if !e.Grid().At(board.C(0, 0)).IsEmpty() {
		t.Fatal("expected cleared cells waiting to fall")
	}

	e.Reset()

	if e.Pending() != 0 {
		t.Errorf("Pending() = %d after reset, want 0", e.Pending())
	}
	if e.CanInteract() || e.Busy() {
		t.Errorf("after reset: CanInteract=%v Busy=%v", e.CanInteract(), e.Busy())
	}
	e.Grid().Each(func(c *board.Cell) {
		if c.IsEmpty() || c.Busy() || c.ReadyToMove || c.State != board.Normal {
			t.Errorf("cell %v leaked state past reset: %+v", c.Coord(), *c)
		}
	})
	if ended := eventsOf[ChainEnded](rec); len(ended) != 1 || ended[0].Multiplier != 1 {
		t.Errorf("reset should flush the chain once, got %+v", ended)
	}

	seen := len(rec.events)
	tickN(t, e, 50)
	if len(rec.events) != seen {
		t.Errorf("cancelled continuations still fired: %v", rec.events[seen:])
	}

	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	if _, err := e.RunUntilIdle(100); err != nil {
		t.Fatal(err)
	}
	checkSettled(t, e)
}

func TestActivatePowerupClearsKind(t *testing.T) {
	e, rec := newTestEngine(t, testConfig(),
		"BaC",
		"ADA",
		"CBA",
	)

	if !e.ActivatePowerup(board.C(0, 1)) {
		t.Fatal("ActivatePowerup refused")
	}

	cleared := eventsOf[PowerupCleared](rec)
	if len(cleared) != 1 {
		t.Fatalf("PowerupCleared events = %d, want 1", len(cleared))
	}
	if cleared[0].Type != board.Chaac || len(cleared[0].Cleared) != 4 {
		t.Errorf("PowerupCleared = %+v, want four chaac cells", cleared[0])
	}
	if p := e.Grid().At(board.C(0, 1)); !p.IsEmpty() || p.Powerup {
		t.Errorf("powerup cell after activation = %+v", *p)
	}
	if e.Combo() != NoChain {
		t.Error("powerup clear must not advance the chain")
	}

	if _, err := e.RunUntilIdle(500); err != nil {
		t.Fatal(err)
	}
	if n := len(e.Grid().Powerups()); n != 0 {
		t.Errorf("powerups after refill = %d, want 0", n)
	}
	checkSettled(t, e)
}

func TestActivatePowerupRejectsPlainCells(t *testing.T) {
	e, _ := newTestEngine(t, testConfig(), oneMove...)
	if e.ActivatePowerup(board.C(0, 0)) {
		t.Error("plain tile activated as a powerup")
	}
	if e.ActivatePowerup(board.C(9, 9)) {
		t.Error("out of bounds coordinate activated")
	}
}

func TestPowerupCycles(t *testing.T) {
	cfg := testConfig()
	cfg.PowerupSwitchTicks = 2
	e, _ := newTestEngine(t, cfg, "ABA", "BcB", "ABA")

	tickN(t, e, 2)
	if got := e.Grid().At(board.C(1, 1)).Type; got != board.Odin {
		t.Errorf("after one switch type = %v, want odin", got)
	}
	tickN(t, e, 4)
	if got := e.Grid().At(board.C(1, 1)).Type; got != board.Chaac {
		t.Errorf("after wrapping type = %v, want chaac", got)
	}
}

func TestDeadBoardForcesShuffle(t *testing.T) {
	e, rec := newTestEngine(t, testConfig(),
		"ABC",
		"BCA",
		"CAB",
	)
	if e.Hints().Len() != 0 {
		t.Fatal("fixture should have no legal move")
	}

	e.idle()
	if e.CanInteract() {
		t.Fatal("a dead board must lock input until reshuffled")
	}
	if _, err := e.RunUntilIdle(200); err != nil {
		t.Fatal(err)
	}

	shuffled := eventsOf[Shuffled](rec)
	if len(shuffled) != 1 || !shuffled[0].Forced {
		t.Errorf("Shuffled events = %+v, want one forced", shuffled)
	}
	checkSettled(t, e)
}

func TestForcedShuffleFailureSurfaces(t *testing.T) {
	cfg := testConfig()
	cfg.Board.Kinds = 1
	cfg.Board.MaxAttempts = 3
	e, _ := newTestEngine(t, cfg,
		"ABC",
		"BCA",
		"CAB",
	)

	e.idle()

	err := e.Tick()
	if !errors.Is(err, board.ErrGenerationFailed) {
		t.Fatalf("Tick() = %v, want ErrGenerationFailed", err)
	}
	if e.CanInteract() {
		t.Error("engine accepts input after a failed reshuffle")
	}
}

func TestRequestShuffle(t *testing.T) {
	e, rec := newTestEngine(t, testConfig(), oneMove...)

	e.AttemptSwap(board.C(2, 0), board.C(2, 1))
	if err := e.RequestShuffle(); !errors.Is(err, ErrBusy) {
		t.Errorf("RequestShuffle() while swapping = %v, want ErrBusy", err)
	}
	if _, err := e.RunUntilIdle(50); err != nil {
		t.Fatal(err)
	}

	if err := e.RequestShuffle(); err != nil {
		t.Fatalf("RequestShuffle() = %v", err)
	}
	if _, err := e.RunUntilIdle(200); err != nil {
		t.Fatal(err)
	}
	shuffled := eventsOf[Shuffled](rec)
	if len(shuffled) != 1 || shuffled[0].Forced {
		t.Errorf("Shuffled events = %+v, want one requested", shuffled)
	}
	checkSettled(t, e)
}

func TestSelection(t *testing.T) {
	e, _ := newTestEngine(t, testConfig(), oneMove...)

	if !e.Select(board.C(0, 0)) {
		t.Fatal("Select refused a ready cell")
	}
	if !e.Select(board.C(1, 1)) {
		t.Fatal("Select refused a ready cell")
	}
	at, ok := e.Selected()
	if !ok || at != board.C(1, 1) {
		t.Errorf("Selected() = %v %v, want (1,1)", at, ok)
	}
	if e.Grid().At(board.C(0, 0)).State != board.Normal {
		t.Error("previous selection not cleared")
	}

	e.AttemptSwap(board.C(1, 1), board.C(1, 2))
	if _, ok := e.Selected(); ok {
		t.Error("selection survived an accepted swap")
	}
}

func TestMultiplier(t *testing.T) {
	tests := []struct {
		count, want int
	}{
		{NoChain, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{5, 5},
	}
	for _, tt := range tests {
		if got := multiplier(tt.count); got != tt.want {
			t.Errorf("multiplier(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}
