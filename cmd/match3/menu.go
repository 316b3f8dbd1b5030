package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start with a mode picker. After a game ends, B or Esc returns to the
menu to play again; Tab opens the scoreboard.

Controls:
  Up/Down/j/k     - Choose a mode
  Left/Right/h/l  - Choose a difficulty
  Enter/Space     - Play
  Tab             - Scores
  Q               - Quit

Examples:
  match3 menu
  match3 menu --fps 30
  match3 menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := fileLogger(flagLogFile)
	defer closeLog()

	store := openStoreOrWarn()
	err := tui.RunSession(recorder(store), reader(store), runtimeConfig(), logger)

	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
