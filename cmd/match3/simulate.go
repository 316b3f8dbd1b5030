package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagSimGames int
	flagSimSave  bool
	flagSimQuiet bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play headless games with the autoplayer",
	Long: `Play full timed games without a terminal. The autoplayer always takes
the first hinted move. Game n uses seed+n, so a fixed --seed reproduces
the same results.

Examples:
  match3 simulate --seed 42
  match3 simulate --games 50 --seed 1 --quiet
  match3 simulate --difficulty hard --log-level debug
  match3 simulate --games 10 --save --db ./sim.db`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimGames, "games", 1, "Number of games to play")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save scores and rounds to the database")
	simulateCmd.Flags().BoolVar(&flagSimQuiet, "quiet", false, "Print only the summary")
}

func runSimulate(cmd *cobra.Command, _ []string) {
	if flagSimGames <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --games must be positive")
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, "simulate")

	var store *storage.Store
	if flagSimSave {
		var err error
		if store, err = storage.Open(flagDBPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	base := runtimeConfig()
	if base.Seed == 0 {
		base.Seed = time.Now().UnixNano()
	}

	out := cmd.OutOrStdout()
	var totals simTotals
	for n := 0; n < flagSimGames; n++ {
		rt := base
		rt.Seed = base.Seed + int64(n)

		res, err := match3.Simulate(match3.SimOptions{Runtime: rt, Logger: logger})
		if err != nil {
			logger.Error("game failed", "game", n+1, "seed", rt.Seed, "error", err)
			totals.failed++
			continue
		}
		totals.add(res)

		if !flagSimQuiet {
			printSimGame(out, n+1, rt.Seed, res)
		}
		if store != nil {
			saveSimGame(store, res)
		}
	}

	totals.print(out, flagSimGames)
	if totals.failed > 0 {
		os.Exit(1)
	}
}

func printSimGame(w io.Writer, n int, seed int64, res match3.SimResult) {
	fmt.Fprintf(w, "Game %d (seed %d, %d ticks)\n", n, seed, res.Ticks)
	fmt.Fprintf(w, "  %-5s  %-11s  %-11s  %-5s  %-7s  %-8s  %s\n",
		"Round", "You A/D", "Foe A/D", "Mult", "Matches", "Shuffles", "Result")
	for _, r := range res.Rounds {
		result := "lost"
		if r.Won() {
			result = "won"
		}
		fmt.Fprintf(w, "  %-5d  %-11s  %-11s  x%-4d  %-7d  %-8d  %s\n",
			r.Round,
			fmt.Sprintf("%d/%d", r.Attack, r.Defence),
			fmt.Sprintf("%d/%d", r.OpponentAttack, r.OpponentDefence),
			r.BestMultiplier, r.Matches, r.ForcedShuffles, result)
	}
	fmt.Fprintf(w, "  Score: %d\n\n", res.Score)
}

func saveSimGame(store *storage.Store, res match3.SimResult) {
	session := storage.NewSessionID()
	for _, r := range res.Rounds {
		if _, err := store.SaveRound(session, "match3", r); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	if _, err := store.SaveScore("match3", res.Score); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

// simTotals aggregates simulated games.
type simTotals struct {
	games, failed     int
	rounds, roundsWon int
	score, bestScore  int
	bestMult          int
}

func (t *simTotals) add(res match3.SimResult) {
	t.games++
	t.score += res.Score
	t.bestScore = max(t.bestScore, res.Score)
	for _, r := range res.Rounds {
		t.rounds++
		if r.Won() {
			t.roundsWon++
		}
		t.bestMult = max(t.bestMult, r.BestMultiplier)
	}
}

func (t simTotals) print(w io.Writer, requested int) {
	fmt.Fprintf(w, "Played %d/%d games", t.games, requested)
	if t.failed > 0 {
		fmt.Fprintf(w, " (%d failed)", t.failed)
	}
	fmt.Fprintln(w)
	if t.games == 0 {
		return
	}
	fmt.Fprintf(w, "Rounds won: %d/%d\n", t.roundsWon, t.rounds)
	fmt.Fprintf(w, "Average score: %.1f  Best: %d  Best multiplier: x%d\n",
		float64(t.score)/float64(t.games), t.bestScore, t.bestMult)
}
