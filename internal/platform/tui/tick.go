// Package tui runs the match-3 modes in the terminal with Bubble Tea.
// It maps keys to actions, drives the fixed-rate tick loop, saves scores
// and round records, and serves the same flow over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate matches core.DefaultConfig.
const defaultTickRate = 60

// TickMsg advances the board engine by one step.
type TickMsg time.Time

// tickInterval is the wall-clock time between engine steps.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = defaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next engine step.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
