package core

// RuntimeConfig is handed to a game mode on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; the platform replaces 0 with a time-based seed

	ConfigPath string // Optional YAML config override
	Difficulty string // Preset name: easy, normal, hard, fixed ("" = normal)
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports to the platform after every step.
type GameState struct {
	Score    int  // Attack plus defence banked over all finished rounds
	Round    int  // Current round, 1-based
	Rounds   int  // Round limit, 0 for untimed modes
	GameOver bool // All rounds played
	Paused   bool
}

// RoundSummary describes one finished round.
type RoundSummary struct {
	Round           int
	Attack          int
	Defence         int
	OpponentAttack  int
	OpponentDefence int
	BestMultiplier  int
	Matches         int
	ForcedShuffles  int
}

// Won reports whether the player's pools beat the opponent's in total.
func (r RoundSummary) Won() bool {
	return r.Attack+r.Defence > r.OpponentAttack+r.OpponentDefence
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	// Rounds lists rounds that finished during this tick.
	Rounds []RoundSummary
}
