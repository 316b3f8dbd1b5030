// match3 is a terminal match-3 duel: swap thunder-god tiles to fill attack
// and defence pools across timed rounds.
//
// Usage:
//
//	match3 list                  - List game modes
//	match3 play [mode]           - Play a mode (default: match3)
//	match3 menu                  - Pick modes interactively
//	match3 simulate              - Play headless games with the autoplayer
//	match3 scores <mode>         - Show high scores for a mode
//	match3 leaderboard           - Browse scores and rounds interactively
//	match3 serve                 - Start SSH server for remote play
//	match3 api                   - Serve the leaderboard over HTTP
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path|url>       - SQLite path or postgres:// URL (default: ~/.match3/scores.db)
//	--config <path>       - Custom match3.yaml
//	--difficulty <preset> - easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	// Import modes to register them
	_ "github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Thunder Match - a match-3 duel in your terminal",
	Long: `Thunder Match is a terminal match-3 game. Swap neighboring tiles to line
up three or more of a kind; attacker tiles fill your attack pool, defender
tiles your defence pool. Chains multiply, powerups clear a whole kind, and
each timed round ends with the opponent's pools drawn against yours.

Available commands:
  list         - Show all game modes
  play         - Play a mode directly
  menu         - Interactive mode picker
  simulate     - Headless autoplay for statistics
  scores       - View high scores
  leaderboard  - Browse scores and recent rounds
  serve        - Start SSH server for remote play
  api          - Serve the leaderboard over HTTP

Examples:
  match3 play
  match3 play match3_zen --difficulty easy
  match3 simulate --games 20 --seed 42
  match3 serve --ssh :2222
  match3 api --addr :8080 --db postgres://localhost/match3`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("invalid --difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/scores.db", "Scores database path or postgres:// URL")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
}

// newLogger builds a logger at the --log-level threshold.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// runtimeConfig builds the runtime config from the global flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.ConfigPath = flagConfig
	cfg.Difficulty = flagDifficulty
	return cfg
}

// openStoreOrWarn opens the scores database; games still run without it.
func openStoreOrWarn() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
