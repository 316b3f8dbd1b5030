package match3

import (
	"bytes"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

const quickConfig = `
board:
  rows: 6
  columns: 6
  kinds: 5
  powerup_chance: 30
round:
  seconds: 2
  rounds: 2
`

// quickRuntime returns a runtime with a short two-round config.
func quickRuntime(t *testing.T, seed int64) core.RuntimeConfig {
	t.Helper()
	path := filepath.Join(t.TempDir(), "match3.yaml")
	if err := os.WriteFile(path, []byte(quickConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	return core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   20,
		Seed:       seed,
		ConfigPath: path,
	}
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// stepUntilInteractive steps with no input until the board accepts moves.
func stepUntilInteractive(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 500; i++ {
		if g.Engine().CanInteract() {
			return
		}
		g.Step(core.NewInputFrame())
	}
	t.Fatal("board never became interactive")
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"match3", "match3_zen"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
	}
	g, err := registry.Create("match3_zen")
	if err != nil {
		t.Fatal(err)
	}
	if g.ID() != "match3_zen" || g.Title() != "Thunder Match (Zen)" {
		t.Errorf("zen mode = %q / %q", g.ID(), g.Title())
	}
}

func TestGameDeterminism(t *testing.T) {
	rt := quickRuntime(t, 12345)

	inputs := make([]core.InputFrame, 120)
	for i := range inputs {
		switch i % 7 {
		case 0:
			inputs[i] = press(core.ActionRight)
		case 3:
			inputs[i] = press(core.ActionSelect)
		case 5:
			inputs[i] = press(core.ActionDown)
		}
	}

	run := func() []Snapshot {
		g := New()
		g.SetAutoplay(true)
		g.Reset(rt)
		var snaps []Snapshot
		for _, in := range inputs {
			g.Step(in)
			snaps = append(snaps, g.Snapshot())
		}
		return snaps
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d diverged:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}

func TestTimedRoundsEndTheGame(t *testing.T) {
	g := New()
	g.SetAutoplay(true)
	g.Reset(quickRuntime(t, 7))

	var summaries []core.RoundSummary
	for i := 0; i < 2000 && !g.State().GameOver; i++ {
		summaries = append(summaries, g.Step(core.NewInputFrame()).Rounds...)
	}

	st := g.State()
	if !st.GameOver {
		t.Fatal("game did not end")
	}
	if len(summaries) != 2 || st.Rounds != 2 {
		t.Fatalf("got %d summaries, state rounds %d", len(summaries), st.Rounds)
	}

	total := 0
	for i, s := range summaries {
		if s.Round != i+1 {
			t.Errorf("summary %d has round %d", i, s.Round)
		}
		if s.OpponentAttack < 0 || s.OpponentDefence < 0 {
			t.Errorf("negative opponent pools: %+v", s)
		}
		if s.BestMultiplier < 1 {
			t.Errorf("round %d best multiplier %d, want at least 1", s.Round, s.BestMultiplier)
		}
		total += s.Attack + s.Defence
	}
	if st.Score != total {
		t.Errorf("score %d, want sum of rounds %d", st.Score, total)
	}

	// A finished game ignores input
	before := g.Snapshot()
	g.Step(press(core.ActionSelect, core.ActionShuffle))
	if g.Snapshot() != before {
		t.Error("game changed after game over")
	}
}

func TestZenHasNoTimer(t *testing.T) {
	g := NewZen()
	g.SetAutoplay(true)
	g.Reset(quickRuntime(t, 3))

	for i := 0; i < 600; i++ {
		if res := g.Step(core.NewInputFrame()); len(res.Rounds) > 0 {
			t.Fatal("zen mode finished a round")
		}
	}
	st := g.State()
	if st.GameOver || st.Rounds != 0 || st.Round != 1 {
		t.Errorf("unexpected zen state %+v", st)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(quickRuntime(t, 11))
	g.Step(core.NewInputFrame())

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	frozen := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(press(core.ActionRight))
	}
	if g.Snapshot() != frozen {
		t.Error("paused game advanced")
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("expected resumed")
	}
}

func TestCursorWraps(t *testing.T) {
	g := New()
	g.Reset(quickRuntime(t, 5))

	start := g.Snapshot()
	for i := 0; i <= start.CursorRow; i++ {
		g.Step(press(core.ActionUp))
	}
	if got := g.Snapshot().CursorRow; got != 5 {
		t.Errorf("cursor row after wrapping up = %d, want 5", got)
	}
	for i := 0; i < 6; i++ {
		g.Step(press(core.ActionRight))
	}
	if got := g.Snapshot().CursorCol; got != start.CursorCol {
		t.Errorf("six steps right on a 6-wide board should return to %d, got %d", start.CursorCol, got)
	}
}

func TestTapTapSwap(t *testing.T) {
	g := New()
	g.Reset(quickRuntime(t, 21))
	stepUntilInteractive(t, g)

	// Aim the cursor at a hinted, non-powerup cell and its matching neighbor.
	var from, to board.Coord
	found := false
	for _, c := range g.Engine().Hints().Coords() {
		if moves := board.FindPreMatches(g.Engine().Grid(), c); len(moves) > 0 {
			from, to, found = c, moves[0].Neighbor, true
			break
		}
	}
	if !found {
		t.Skip("seed produced only powerup hints")
	}

	g.cursor = from
	g.Step(press(core.ActionSelect))
	if sel, ok := g.Engine().Selected(); !ok || sel != from {
		t.Fatalf("first tap should select %v, got %v %v", from, sel, ok)
	}
	g.cursor = to
	g.Step(press(core.ActionSelect))
	if _, ok := g.Engine().Selected(); ok {
		t.Error("selection should clear once the swap starts")
	}
	if !g.Engine().Busy() {
		t.Error("swap should be in flight")
	}
}

func TestConsumables(t *testing.T) {
	g := New()
	g.Reset(quickRuntime(t, 8))
	stepUntilInteractive(t, g)

	g.Step(press(core.ActionHint))
	if g.items.Hints != 2 || g.hintTicks == 0 {
		t.Errorf("hint not consumed: hints=%d ticks=%d", g.items.Hints, g.hintTicks)
	}

	g.Step(press(core.ActionShuffle))
	if g.items.Shuffles != 2 || !g.Engine().Locked() {
		t.Errorf("shuffle not started: shuffles=%d locked=%v", g.items.Shuffles, g.Engine().Locked())
	}

	// The board is busy now; another shuffle is refused without spending a charge.
	g.Step(press(core.ActionShuffle))
	if g.items.Shuffles != 2 {
		t.Errorf("busy shuffle spent a charge: %d", g.items.Shuffles)
	}

	g.Step(press(core.ActionBoostAttack))
	g.Step(press(core.ActionBoostAttack))
	if g.items.AttackBoosts != 0 {
		t.Errorf("attack boosts = %d, want 0", g.items.AttackBoosts)
	}
	if g.status != "Boost unavailable" {
		t.Errorf("second boost status = %q", g.status)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(quickRuntime(t, 9))
	g.Step(core.NewInputFrame())

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()
	for _, want := range []string{"Thunder Match", "Round 1/2", "Attack", "Lucky"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	small := core.NewScreen(30, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "Terminal too small") {
		t.Error("small screen should show a size warning")
	}
}

func TestSimulate(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	res, err := Simulate(SimOptions{Runtime: quickRuntime(t, 99), Logger: logger})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if len(res.Rounds) != 2 {
		t.Errorf("got %d rounds", len(res.Rounds))
	}
	if !strings.Contains(buf.String(), "round ended") || !strings.Contains(buf.String(), "hints") {
		t.Error("expected round and engine events in the log")
	}

	_, err = Simulate(SimOptions{Runtime: quickRuntime(t, 99), MaxTicks: 5})
	if !errors.Is(err, ErrSimulationStalled) {
		t.Errorf("tiny budget error = %v", err)
	}
}

func TestAutoMove(t *testing.T) {
	cfg := engine.DefaultConfig(10)
	cfg.Board.PowerupChance = 0
	e := engine.New(cfg, rand.New(rand.NewSource(4)))
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	if _, err := e.RunUntilIdle(200); err != nil {
		t.Fatal(err)
	}
	if !AutoMove(e) {
		t.Fatal("AutoMove found no move on a playable board")
	}
	if e.CanInteract() {
		t.Error("board should be busy after an automatic swap")
	}
	if AutoMove(e) {
		t.Error("AutoMove should refuse while the board is busy")
	}
}
