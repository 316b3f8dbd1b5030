package match3

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// ErrSimulationStalled is returned when a simulated game does not finish
// within its tick budget.
var ErrSimulationStalled = errors.New("match3: simulation did not finish")

// SimOptions configures a headless game.
type SimOptions struct {
	Runtime  core.RuntimeConfig
	Logger   *log.Logger // optional
	MaxTicks int         // 0 picks a budget from the round settings
}

// SimResult is the outcome of a headless game.
type SimResult struct {
	Rounds []core.RoundSummary
	Score  int
	Ticks  uint64
}

// Simulate plays a full duel with the autoplayer and no player input.
func Simulate(opts SimOptions) (SimResult, error) {
	g := New()
	g.SetLogger(opts.Logger)
	g.SetAutoplay(true)
	g.Reset(opts.Runtime)

	budget := opts.MaxTicks
	if budget <= 0 {
		perRound := g.cfg.Round.Seconds + maxRoundOverrun + 5
		budget = int(perRound*float64(g.runtime.TickRate)) * g.cfg.Round.Rounds
	}

	in := core.NewInputFrame()
	var res SimResult
	for n := 0; n < budget && !g.State().GameOver; n++ {
		step := g.Step(in)
		res.Rounds = append(res.Rounds, step.Rounds...)
	}
	res.Score = g.State().Score
	res.Ticks = g.tickCount

	if err := g.Err(); err != nil {
		return res, fmt.Errorf("match3: round %d: %w", g.round, err)
	}
	if !g.State().GameOver {
		return res, ErrSimulationStalled
	}
	return res, nil
}
