// Package scoring turns engine events into the player's attack and defence
// pools. It is the scoring collaborator of the board engine and knows nothing
// about how the board resolves matches.
package scoring

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// Family selects the pool a tile kind scores into.
type Family int

const (
	Attacker Family = iota
	Defender
)

func (f Family) String() string {
	if f == Defender {
		return "defender"
	}
	return "attacker"
}

// ParseFamily accepts "attacker" or "defender".
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "attacker", "attack":
		return Attacker, nil
	case "defender", "defence", "defense":
		return Defender, nil
	}
	return Attacker, fmt.Errorf("scoring: unknown family %q", s)
}

// Rule maps one tile kind to its family and per-tile worth.
type Rule struct {
	Type   board.TileType
	Family Family
	Worth  int
}

// Rules is the rule table for every kind in play.
type Rules []Rule

// DefaultRules alternates families across the eight kinds.
func DefaultRules() Rules {
	return Rules{
		{Type: board.Chaac, Family: Attacker, Worth: 1},
		{Type: board.Indra, Family: Defender, Worth: 1},
		{Type: board.LeiGong, Family: Attacker, Worth: 1},
		{Type: board.Odin, Family: Defender, Worth: 1},
		{Type: board.Perun, Family: Attacker, Worth: 2},
		{Type: board.Thor, Family: Defender, Worth: 2},
		{Type: board.Zeus, Family: Attacker, Worth: 2},
		{Type: board.Raijin, Family: Defender, Worth: 2},
	}
}

// Lookup returns the rule for t.
func (r Rules) Lookup(t board.TileType) (Rule, bool) {
	for _, rule := range r {
		if rule.Type == t {
			return rule, true
		}
	}
	return Rule{}, false
}

// Validate checks that every rule names a real tile kind once and has a
// positive worth.
func (r Rules) Validate() error {
	seen := make(map[board.TileType]bool, len(r))
	for _, rule := range r {
		if rule.Type == board.Empty || !rule.Type.Valid() {
			return fmt.Errorf("scoring: rule for invalid tile %d", rule.Type)
		}
		if seen[rule.Type] {
			return fmt.Errorf("scoring: duplicate rule for %s", rule.Type)
		}
		if rule.Worth <= 0 {
			return fmt.Errorf("scoring: rule for %s has worth %d", rule.Type, rule.Worth)
		}
		seen[rule.Type] = true
	}
	return nil
}

// Stats is a pair of attack and defence points.
type Stats struct {
	Attack  int
	Defence int
}

// Add returns s + o.
func (s Stats) Add(o Stats) Stats {
	return Stats{Attack: s.Attack + o.Attack, Defence: s.Defence + o.Defence}
}

// Scale returns s multiplied by k.
func (s Stats) Scale(k int) Stats {
	return Stats{Attack: s.Attack * k, Defence: s.Defence * k}
}

// Sum returns attack plus defence.
func (s Stats) Sum() int {
	return s.Attack + s.Defence
}

// award returns the points a rule yields for n counted tiles. The lucky kind
// scores into both pools.
func award(rule Rule, n int, lucky bool) Stats {
	pts := n * rule.Worth
	var s Stats
	if rule.Family == Attacker {
		s.Attack = pts
	} else {
		s.Defence = pts
	}
	if lucky {
		s.Attack, s.Defence = pts, pts
	}
	return s
}
