package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	embedded := Match3Config{}
	if err := yaml.Unmarshal(defaultMatch3YAML, &embedded); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(embedded, DefaultMatch3Config()) {
		t.Errorf("embedded defaults drifted from DefaultMatch3Config:\n%+v\n%+v", embedded, DefaultMatch3Config())
	}
	if err := DefaultMatch3Config().Validate(); err != nil {
		t.Errorf("defaults are invalid: %v", err)
	}
}

func TestLoadMatch3CustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "match3.yaml")
	partial := "board:\n  kinds: 5\nround:\n  seconds: 45\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3: %v", err)
	}
	if cfg.Board.Kinds != 5 || cfg.Round.Seconds != 45 {
		t.Errorf("overrides not applied: kinds=%d seconds=%v", cfg.Board.Kinds, cfg.Round.Seconds)
	}
	// Unnamed fields keep their defaults
	if cfg.Board.Rows != 8 || len(cfg.Scoring.Rules) != 8 {
		t.Errorf("defaults lost: rows=%d rules=%d", cfg.Board.Rows, len(cfg.Scoring.Rules))
	}
}

func TestLoadMatch3Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "board: [", "failed to parse"},
		{"bad kinds", "board:\n  kinds: 12\n", "board.kinds"},
		{"bad tile", "scoring:\n  rules:\n    - { tile: loki, family: attacker, worth: 1 }\n", "unknown tile"},
		{"bad family", "scoring:\n  rules:\n    - { tile: odin, family: healer, worth: 1 }\n", "unknown family"},
		{"negative timing", "timings:\n  swap: -1\n", "timings.swap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadMatch3(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadMatch3() error = %v, want containing %q", err, tt.want)
			}
		})
	}

	if _, err := LoadMatch3(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom path")
	}
}

func TestLoadMatch3UserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// Without a user file the embedded default is used
	cfg, err := LoadMatch3("")
	if err != nil {
		t.Fatalf("LoadMatch3: %v", err)
	}
	if cfg.Board.Kinds != 8 {
		t.Errorf("expected embedded default kinds 8, got %d", cfg.Board.Kinds)
	}

	userDir := filepath.Join(home, ".match3", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "match3.yaml"), []byte("board:\n  kinds: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadMatch3("")
	if err != nil {
		t.Fatalf("LoadMatch3: %v", err)
	}
	if cfg.Board.Kinds != 4 {
		t.Errorf("expected user kinds 4, got %d", cfg.Board.Kinds)
	}

	// An invalid user file is skipped
	if err := os.WriteFile(filepath.Join(userDir, "match3.yaml"), []byte("board:\n  kinds: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadMatch3("")
	if cfg.Board.Kinds != 8 {
		t.Errorf("invalid user file should fall back to defaults, got kinds %d", cfg.Board.Kinds)
	}
}

func TestApplyMatch3Preset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		kinds   int
		seconds float64
		enabled bool
		level   float64
	}{
		{DifficultyEasy, 6, 40, true, 0.0},
		{DifficultyNormal, 8, 30, true, 0.3},
		{DifficultyHard, 8, 25, true, 0.7},
		{DifficultyFixed, 8, 30, false, 0.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultMatch3Config()
			ApplyMatch3Preset(&cfg, tt.preset)
			if cfg.Board.Kinds != tt.kinds {
				t.Errorf("kinds = %d, want %d", cfg.Board.Kinds, tt.kinds)
			}
			if cfg.Round.Seconds != tt.seconds {
				t.Errorf("seconds = %v, want %v", cfg.Round.Seconds, tt.seconds)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("initial level = %v, want %v", cfg.Difficulty.InitialLevel, tt.level)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("empty preset = %q, %v", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("hard preset = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset accepted")
	}
}

func TestDifficultyProgression(t *testing.T) {
	cfg := DefaultMatch3Config().Difficulty
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(1); got != 0 {
		t.Errorf("Level(1) = %v, want 0", got)
	}
	if got := dm.Level(3); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level(3) = %v, want 0.5", got)
	}
	if got := dm.Level(9); got != 1 {
		t.Errorf("Level(9) = %v, want 1", got)
	}

	if got := dm.RoundSeconds(30, 5); math.Abs(got-21) > 1e-9 {
		t.Errorf("RoundSeconds(30, 5) = %v, want 21", got)
	}
	if got := dm.RoundSeconds(12, 5); got != 10 {
		t.Errorf("RoundSeconds should not drop below 10, got %v", got)
	}
	if got := dm.PowerupChance(25, 5); got != 10 {
		t.Errorf("PowerupChance(25, 5) = %d, want 10", got)
	}
	if got := dm.PowerupChance(5, 5); got != 0 {
		t.Errorf("PowerupChance should not go negative, got %d", got)
	}

	dm.SetEnabled(false)
	dm.SetInitialLevel(0.4)
	if got := dm.Level(5); got != 0.4 {
		t.Errorf("disabled Level(5) = %v, want 0.4", got)
	}
}

func TestValidateReportsTimingsInOrder(t *testing.T) {
	cfg := DefaultMatch3Config()
	cfg.Timings.HintFlicker = -1
	cfg.Timings.Swap = -2
	cfg.Timings.ChainTimeout = -3

	want := "timings.swap must not be negative, got -2\n" +
		"timings.chain_timeout must not be negative, got -3\n" +
		"timings.hint_flicker must not be negative, got -1"
	for i := 0; i < 20; i++ {
		err := cfg.Validate()
		if err == nil {
			t.Fatal("Validate() accepted negative timings")
		}
		if err.Error() != want {
			t.Fatalf("run %d: Validate() =\n%s\nwant\n%s", i, err, want)
		}
	}
}
