// Package match3 implements the match-3 duel as registry game modes.
// The player swaps thunder-god tiles on a board driven by the engine package
// while scoring fills attack and defence pools. Timed rounds end with the
// opponent's pools drawn against the player's.
package match3

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/games/match3/scoring"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode selects the rules of a game.
type Mode int

const (
	ModeDuel Mode = iota // Timed rounds against the opponent
	ModeZen              // No timer, no round limit
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
	StateFailed   = "failed" // the engine could not produce a playable board
)

// maxRoundOverrun bounds how long a round may wait for a cascade after the
// timer expired.
const maxRoundOverrun = 10 // seconds

// Game is one match-3 session.
type Game struct {
	mode Mode

	runtime    core.RuntimeConfig
	cfg        config.Match3Config
	difficulty *config.DifficultyManager
	rules      scoring.Rules
	rng        *rand.Rand
	logger     *log.Logger
	autoplay   bool

	eng      *engine.Engine
	ledger   *scoring.Ledger
	items    scoring.Consumables
	opponent scoring.Opponent

	state      string
	cursor     board.Coord
	round      int
	roundTicks int // ticks left in the round, counts below zero while waiting for the board
	roundLen   int // ticks the current round started with
	idleTicks  int // ticks since the last player action
	hintAt     board.Coord
	hintTicks  int // ticks the requested hint stays highlighted
	tickCount  uint64
	status     string
	err        error

	total  scoring.Stats
	rounds []core.RoundSummary
}

// New creates a timed duel game.
func New() *Game {
	return &Game{mode: ModeDuel}
}

// NewZen creates an untimed game.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "match3_zen"
	}
	return "match3"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Thunder Match (Zen)"
	}
	return "Thunder Match"
}

// SetLogger makes the game forward engine events to logger at debug level.
// It takes effect on the next round.
func (g *Game) SetLogger(logger *log.Logger) {
	g.logger = logger
}

// SetAutoplay lets the game play itself by always taking the first hint.
func (g *Game) SetAutoplay(on bool) {
	g.autoplay = on
}

// Reset loads the configuration and starts the first round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	g.runtime = runtime

	cfg, err := config.LoadMatch3(runtime.ConfigPath)
	if err != nil {
		g.logf("config rejected, using defaults", "error", err)
		cfg = config.DefaultMatch3Config()
	}
	if preset, ok := config.ParsePreset(runtime.Difficulty); ok && runtime.Difficulty != "" {
		config.ApplyMatch3Preset(&cfg, preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	rules, err := cfg.ScoringRules()
	if err != nil {
		rules = scoring.DefaultRules()
	}
	g.rules = rules

	//nolint:gosec // Deterministic gameplay RNG, not security sensitive
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.ledger = scoring.NewLedger(rules, scoring.Stats{
		Attack:  cfg.Scoring.ShuffleBonus.Attack,
		Defence: cfg.Scoring.ShuffleBonus.Defence,
	})
	g.items = scoring.Consumables{
		Shuffles:      cfg.Player.Shuffles,
		Hints:         cfg.Player.Hints,
		AttackBoosts:  cfg.Player.AttackBoosts,
		DefenceBoosts: cfg.Player.DefenceBoosts,
	}
	g.opponent = scoring.Opponent{Floor: cfg.Opponent.Floor}

	g.state = StatePlaying
	g.round = 0
	g.total = scoring.Stats{}
	g.rounds = nil
	g.tickCount = 0
	g.err = nil
	g.eng = nil
	g.cursor = board.C(cfg.Board.Rows/2, cfg.Board.Columns/2)

	g.startRound()
}

// engineConfig converts the configured seconds into ticks for round n.
func (g *Game) engineConfig(round int) engine.Config {
	rate := g.runtime.TickRate
	t := g.cfg.Timings
	chance := g.cfg.Board.PowerupChance
	if g.mode == ModeDuel {
		chance = g.difficulty.PowerupChance(chance, round)
	}
	return engine.Config{
		Board: board.GenParams{
			Rows:          g.cfg.Board.Rows,
			Cols:          g.cfg.Board.Columns,
			Kinds:         g.cfg.Board.Kinds,
			PowerupChance: chance,
			MaxAttempts:   g.cfg.Board.MaxGenerationAttempts,
		},
		SwapTicks:          engine.Ticks(t.Swap, rate),
		FallTicksPerRow:    engine.Ticks(t.FallPerRow, rate),
		BeforeFallTicks:    engine.Ticks(t.BeforeFall, rate),
		BeforeShuffleTicks: engine.Ticks(t.BeforeShuffle, rate),
		BoardSpawnTicks:    engine.Ticks(t.BoardSpawn, rate),
		BoardRespawnTicks:  engine.Ticks(t.BoardRespawn, rate),
		ChainTimeoutTicks:  engine.Ticks(t.ChainTimeout, rate),
		PowerupSwitchTicks: engine.Ticks(t.PowerupSwitch, rate),
	}
}

// startRound builds a fresh engine for the next round and picks its lucky kind.
func (g *Game) startRound() {
	g.round++
	g.ledger.NewRound()

	kinds := board.Kinds(g.cfg.Board.Kinds)
	g.ledger.SetLucky(kinds[g.rng.Intn(len(kinds))])

	g.eng = engine.New(g.engineConfig(g.round), g.rng)
	g.eng.Subscribe(g.ledger)
	if g.logger != nil {
		g.eng.Subscribe(NewEventLogger(g.logger))
	}
	if err := g.eng.Start(); err != nil {
		g.fail(err)
		return
	}

	g.roundLen = 0
	if g.mode == ModeDuel {
		secs := g.difficulty.RoundSeconds(g.cfg.Round.Seconds, g.round)
		g.roundLen = engine.Ticks(secs, g.runtime.TickRate)
	}
	g.roundTicks = g.roundLen
	g.idleTicks = 0
	g.hintTicks = 0
	g.status = fmt.Sprintf("Round %d - lucky tile: %s", g.round, TileName(g.ledger.Lucky()))
	g.logf("round started", "round", g.round, "lucky", g.ledger.Lucky(), "ticks", g.roundLen)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.state {
	case StateGameOver, StateFailed:
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
	}
	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.handleInput(in)
	if g.autoplay && g.eng.CanInteract() {
		AutoMove(g.eng)
	}

	if err := g.eng.Tick(); err != nil {
		g.fail(err)
		return core.StepResult{State: g.State()}
	}
	g.idleTicks++
	if g.hintTicks > 0 {
		g.hintTicks--
	}

	var finished []core.RoundSummary
	if g.mode == ModeDuel {
		g.roundTicks--
		overrun := engine.Ticks(maxRoundOverrun, g.runtime.TickRate)
		if g.roundTicks <= 0 && (!g.eng.Busy() || g.roundTicks < -overrun) {
			finished = append(finished, g.endRound())
		}
	}

	return core.StepResult{State: g.State(), Rounds: finished}
}

// endRound stops the board, draws the opponent's points and moves on.
func (g *Game) endRound() core.RoundSummary {
	// Reset flushes the active chain into the ledger before anything is read.
	g.eng.Reset()

	player := g.ledger.Stats()
	opp := g.opponent.RoundPoints(g.rng, player)
	summary := core.RoundSummary{
		Round:           g.round,
		Attack:          player.Attack,
		Defence:         player.Defence,
		OpponentAttack:  opp.Attack,
		OpponentDefence: opp.Defence,
		BestMultiplier:  g.ledger.BestMultiplier(),
		Matches:         g.ledger.Matches(),
		ForcedShuffles:  g.ledger.ForcedShuffles(),
	}
	g.total = g.total.Add(player)
	g.rounds = append(g.rounds, summary)
	g.logf("round ended", "round", g.round,
		"attack", player.Attack, "defence", player.Defence,
		"opponent_attack", opp.Attack, "opponent_defence", opp.Defence)

	if g.round >= g.cfg.Round.Rounds {
		g.state = StateGameOver
		g.status = "All rounds played"
		return summary
	}
	g.startRound()
	return summary
}

func (g *Game) fail(err error) {
	g.err = err
	g.state = StateFailed
	g.status = err.Error()
	g.logf("engine failed", "error", err)
}

func (g *Game) logf(msg string, keyvals ...any) {
	if g.logger != nil {
		g.logger.Info(msg, keyvals...)
	}
}

// Score is the player's total over finished rounds plus the current round's
// banked points.
func (g *Game) Score() scoring.Stats {
	if g.ledger == nil || g.state == StateGameOver {
		return g.total
	}
	return g.total.Add(g.ledger.Stats())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	rounds := 0
	if g.mode == ModeDuel {
		rounds = g.cfg.Round.Rounds
	}
	return core.GameState{
		Score:    g.Score().Sum(),
		Round:    g.round,
		Rounds:   rounds,
		GameOver: g.state == StateGameOver || g.state == StateFailed,
		Paused:   g.state == StatePaused,
	}
}

// Err returns the engine failure that ended the game, if any.
func (g *Game) Err() error {
	return g.err
}

// Rounds returns the summaries of finished rounds.
func (g *Game) Rounds() []core.RoundSummary {
	return g.rounds
}

// Engine exposes the current round's engine.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Register the modes with the registry
func init() {
	registry.Register("match3", func() registry.Game {
		return New()
	})
	registry.Register("match3_zen", func() registry.Game {
		return NewZen()
	})
}
