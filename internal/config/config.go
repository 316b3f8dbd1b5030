// Package config provides YAML-based game configuration loading and
// difficulty management for the match-3 duel.
package config

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board      Match3Board      `yaml:"board"`
	Timings    Match3Timings    `yaml:"timings"`
	Round      Match3Round      `yaml:"round"`
	Player     Match3Player     `yaml:"player"`
	Scoring    Match3Scoring    `yaml:"scoring"`
	Opponent   Match3Opponent   `yaml:"opponent"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Match3Board defines the board shape and generation parameters.
type Match3Board struct {
	Rows                  int `yaml:"rows"`
	Columns               int `yaml:"columns"`
	Kinds                 int `yaml:"kinds"`          // Tile kinds in play, 1..8
	PowerupChance         int `yaml:"powerup_chance"` // Percent, 0..100
	MaxGenerationAttempts int `yaml:"max_generation_attempts"`
}

// Match3Timings holds every animation and gameplay delay, in seconds.
type Match3Timings struct {
	Swap          float64 `yaml:"swap"`
	FallPerRow    float64 `yaml:"fall_per_row"`
	BeforeFall    float64 `yaml:"before_fall"`
	BeforeShuffle float64 `yaml:"before_shuffle"`
	BoardSpawn    float64 `yaml:"board_spawn"`
	BoardRespawn  float64 `yaml:"board_respawn"`
	ChainTimeout  float64 `yaml:"chain_timeout"`
	PowerupSwitch float64 `yaml:"powerup_switch"`
	HintIdle      float64 `yaml:"hint_idle"`    // Idle time before hints flicker
	HintFlicker   float64 `yaml:"hint_flicker"` // How long hints flicker
}

// Match3Round defines the timed round structure.
type Match3Round struct {
	Seconds float64 `yaml:"seconds"`
	Rounds  int     `yaml:"rounds"`
}

// Match3Player defines the consumables a player starts with.
type Match3Player struct {
	Shuffles      int `yaml:"shuffles"`
	Hints         int `yaml:"hints"`
	AttackBoosts  int `yaml:"attack_boosts"`
	DefenceBoosts int `yaml:"defence_boosts"`
	BoostPercent  int `yaml:"boost_percent"`
}

// Match3Scoring defines the rule table and the reshuffle bonus.
type Match3Scoring struct {
	ShuffleBonus PoolConfig   `yaml:"shuffle_bonus"`
	Rules        []RuleConfig `yaml:"rules"`
}

// PoolConfig is a pair of attack and defence points.
type PoolConfig struct {
	Attack  int `yaml:"attack"`
	Defence int `yaml:"defence"`
}

// RuleConfig maps one tile kind to a scoring family and worth.
type RuleConfig struct {
	Tile   string `yaml:"tile"`
	Family string `yaml:"family"` // "attacker" or "defender"
	Worth  int    `yaml:"worth"`
}

// Match3Opponent defines how opponent points are drawn.
type Match3Opponent struct {
	Floor int `yaml:"floor"` // Exclusive upper bound of the random minimum
}

// DifficultyConfig defines the round-based difficulty progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "round" or "none"
	MaxAt int    `yaml:"max_at"` // Round at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	RoundReduction   float64 `yaml:"round_reduction"`   // Fraction of round time removed at max difficulty
	PowerupReduction int     `yaml:"powerup_reduction"` // Powerup chance removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}
