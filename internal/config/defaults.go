package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: Match3Board{
			Rows:                  8,
			Columns:               8,
			Kinds:                 8,
			PowerupChance:         25,
			MaxGenerationAttempts: 5000,
		},
		Timings: Match3Timings{
			Swap:          0.2,
			FallPerRow:    0.1,
			BeforeFall:    0.2,
			BeforeShuffle: 0.6,
			BoardSpawn:    1.0,
			BoardRespawn:  0.5,
			ChainTimeout:  2.0,
			PowerupSwitch: 0.5,
			HintIdle:      7.0,
			HintFlicker:   2.0,
		},
		Round: Match3Round{
			Seconds: 30,
			Rounds:  5,
		},
		Player: Match3Player{
			Shuffles:      3,
			Hints:         3,
			AttackBoosts:  1,
			DefenceBoosts: 1,
			BoostPercent:  20,
		},
		Scoring: Match3Scoring{
			ShuffleBonus: PoolConfig{Attack: 50, Defence: 50},
			Rules: []RuleConfig{
				{Tile: "chaac", Family: "attacker", Worth: 1},
				{Tile: "indra", Family: "defender", Worth: 1},
				{Tile: "leigong", Family: "attacker", Worth: 1},
				{Tile: "odin", Family: "defender", Worth: 1},
				{Tile: "perun", Family: "attacker", Worth: 2},
				{Tile: "thor", Family: "defender", Worth: 2},
				{Tile: "zeus", Family: "attacker", Worth: 2},
				{Tile: "raijin", Family: "defender", Worth: 2},
			},
		},
		Opponent: Match3Opponent{
			Floor: 25,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "round",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				RoundReduction:   0.3,
				PowerupReduction: 15,
			},
		},
	}
}
