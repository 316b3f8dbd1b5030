package engine

import "github.com/vovakirdan/tui-match3/internal/games/match3/board"

// Config holds the engine settings. Every duration is measured in simulation
// ticks.
type Config struct {
	Board board.GenParams

	SwapTicks          int // One leg of a swap animation
	FallTicksPerRow    int // Fall animation time per row travelled
	BeforeFallTicks    int // Delay between clearing matches and the collapse
	BeforeShuffleTicks int // Delay before a reshuffle applies
	BoardSpawnTicks    int // Entry animation on Start
	BoardRespawnTicks  int // Entry animation after a reshuffle
	ChainTimeoutTicks  int // Active chain window
	PowerupSwitchTicks int // Powerups cycle their kind at this interval; 0 disables
}

// Ticks converts a duration in seconds to simulation ticks at the given rate.
// Positive durations never round down to zero.
func Ticks(seconds float64, tickRate int) int {
	if seconds <= 0 || tickRate <= 0 {
		return 0
	}
	t := int(seconds*float64(tickRate) + 0.5)
	if t < 1 {
		t = 1
	}
	return t
}

// DefaultConfig returns the classic timings at the given tick rate.
func DefaultConfig(tickRate int) Config {
	return Config{
		Board:              board.DefaultGenParams(),
		SwapTicks:          Ticks(0.2, tickRate),
		FallTicksPerRow:    Ticks(0.1, tickRate),
		BeforeFallTicks:    Ticks(0.2, tickRate),
		BeforeShuffleTicks: Ticks(0.6, tickRate),
		BoardSpawnTicks:    Ticks(1, tickRate),
		BoardRespawnTicks:  Ticks(0.5, tickRate),
		ChainTimeoutTicks:  Ticks(2, tickRate),
		PowerupSwitchTicks: Ticks(0.5, tickRate),
	}
}
