package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

const defaultMode = "match3"

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes",
	Long: `Shows every registered mode with its round rules. The rules reflect
--config and --difficulty.`,
	Run: runList,
}

func runList(cmd *cobra.Command, _ []string) {
	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		cfg = config.DefaultMatch3Config()
	}
	if preset, ok := config.ParsePreset(flagDifficulty); ok && flagDifficulty != "" {
		config.ApplyMatch3Preset(&cfg, preset)
	}
	printModes(cmd.OutOrStdout(), registry.List(), cfg)
}

func printModes(w io.Writer, modes []registry.GameInfo, cfg config.Match3Config) {
	if len(modes) == 0 {
		fmt.Fprintln(w, "No game modes registered.")
		return
	}

	idW, titleW := len("Mode"), len("Title")
	for _, m := range modes {
		idW = max(idW, len(m.ID))
		titleW = max(titleW, len(m.Title))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", idW, "Mode", titleW, "Title", "Rounds")
	for _, m := range modes {
		rules := modeRules(m.ID, cfg)
		if m.ID == defaultMode {
			rules += " (default)"
		}
		fmt.Fprintf(w, "  %-*s  %-*s  %s\n", idW, m.ID, titleW, m.Title, rules)
	}
	fmt.Fprintf(w, "\nBoard %dx%d, %d tile kinds. Start one with 'match3 play <mode>'.\n",
		cfg.Board.Rows, cfg.Board.Columns, cfg.Board.Kinds)
}

func modeRules(id string, cfg config.Match3Config) string {
	if id == "match3_zen" {
		return "untimed"
	}
	return fmt.Sprintf("%d x %gs", cfg.Round.Rounds, cfg.Round.Seconds)
}
