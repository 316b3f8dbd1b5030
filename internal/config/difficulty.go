package config

import "math"

// DifficultyManager calculates per-round game parameters.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a 1-based round.
func (d *DifficultyManager) Level(round int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "round" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt - 1)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(round-1)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// RoundSeconds returns the round length for a round.
func (d *DifficultyManager) RoundSeconds(base float64, round int) float64 {
	level := d.Level(round)
	// Rounds get shorter as difficulty increases
	result := base * (1.0 - level*d.cfg.Scaling.RoundReduction)
	if result < 10 { // Minimum playable round
		result = math.Min(base, 10)
	}
	return result
}

// PowerupChance returns the powerup chance for a round.
func (d *DifficultyManager) PowerupChance(base int, round int) int {
	level := d.Level(round)
	result := base - int(level*float64(d.cfg.Scaling.PowerupReduction))
	if result < 0 {
		result = 0
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
