package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/games/match3/scoring"
)

// Validate rejects configurations the game cannot run with.
func (c Match3Config) Validate() error {
	var errs []error

	b := c.Board
	if b.Rows < 3 || b.Columns < 3 {
		errs = append(errs, fmt.Errorf("board must be at least 3x3, got %dx%d", b.Rows, b.Columns))
	}
	if b.Kinds < 1 || b.Kinds > board.MaxKinds {
		errs = append(errs, fmt.Errorf("board.kinds must be within 1..%d, got %d", board.MaxKinds, b.Kinds))
	}
	if b.PowerupChance < 0 || b.PowerupChance > 100 {
		errs = append(errs, fmt.Errorf("board.powerup_chance must be within 0..100, got %d", b.PowerupChance))
	}
	if b.MaxGenerationAttempts < 1 {
		errs = append(errs, fmt.Errorf("board.max_generation_attempts must be positive, got %d", b.MaxGenerationAttempts))
	}

	t := c.Timings
	timings := []struct {
		name string
		v    float64
	}{
		{"swap", t.Swap},
		{"fall_per_row", t.FallPerRow},
		{"before_fall", t.BeforeFall},
		{"before_shuffle", t.BeforeShuffle},
		{"board_spawn", t.BoardSpawn},
		{"board_respawn", t.BoardRespawn},
		{"chain_timeout", t.ChainTimeout},
		{"powerup_switch", t.PowerupSwitch},
		{"hint_idle", t.HintIdle},
		{"hint_flicker", t.HintFlicker},
	}
	for _, tm := range timings {
		if tm.v < 0 {
			errs = append(errs, fmt.Errorf("timings.%s must not be negative, got %v", tm.name, tm.v))
		}
	}

	if c.Round.Seconds <= 0 || c.Round.Rounds < 1 {
		errs = append(errs, fmt.Errorf("round needs positive seconds and rounds, got %vs x %d", c.Round.Seconds, c.Round.Rounds))
	}

	if _, err := c.ScoringRules(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ScoringRules converts the rule table.
func (c Match3Config) ScoringRules() (scoring.Rules, error) {
	rules := make(scoring.Rules, 0, len(c.Scoring.Rules))
	for _, rc := range c.Scoring.Rules {
		t, err := board.ParseTileType(rc.Tile)
		if err != nil {
			return nil, fmt.Errorf("scoring.rules: %w", err)
		}
		f, err := scoring.ParseFamily(rc.Family)
		if err != nil {
			return nil, fmt.Errorf("scoring.rules: %w", err)
		}
		rules = append(rules, scoring.Rule{Type: t, Family: f, Worth: rc.Worth})
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}
