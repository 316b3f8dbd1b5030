package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: match3).

Controls:
  Arrows/WASD  - Move the cursor
  Enter/Space  - Pick a tile, then pick a neighbor to swap
                 (pick a powerup alone to fire it)
  H            - Hint (3 per game)
  X            - Shuffle (3 per game)
  1 / 2        - Attack / defence boost (once per game)
  P            - Pause
  R            - Restart (after game over)
  B/Esc        - Leave (after game over or while paused)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer tile kinds, longer rounds, more powerups
  normal - Default settings, rounds shorten as the game goes on
  hard   - All eight kinds, short rounds, rare powerups
  fixed  - No progression between rounds

Examples:
  match3 play
  match3 play match3_zen
  match3 play --difficulty hard
  match3 play --config ./my-match3.yaml --log-file match3.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "match3"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'match3 list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := fileLogger(flagLogFile)
	defer closeLog()

	store := openStoreOrWarn()
	runErr := tui.Run(game, recorder(store), runtimeConfig(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// fileLogger opens a log file for interactive commands, where stderr is
// hidden behind the alternate screen. An empty path disables logging.
func fileLogger(path string) (*log.Logger, func()) {
	if path == "" {
		return nil, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return nil, func() {}
	}
	return newLogger(f, "match3"), func() { f.Close() }
}

// recorder keeps a missing store a nil interface.
func recorder(store *storage.Store) tui.Recorder {
	if store == nil {
		return nil
	}
	return store
}

func reader(store *storage.Store) tui.ScoreReader {
	if store == nil {
		return nil
	}
	return store
}
