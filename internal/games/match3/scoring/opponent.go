package scoring

import "github.com/vovakirdan/tui-match3/internal/games/match3/board"

// Opponent draws the computer player's round points from the player's.
type Opponent struct {
	// Floor is the exclusive upper bound of the random minimum per pool.
	Floor int
}

// DefaultOpponent uses a floor of 25.
func DefaultOpponent() Opponent {
	return Opponent{Floor: 25}
}

// RoundPoints returns, for each pool, the larger of a random floor in
// [0, Floor) and the player's points shifted by up to half in either
// direction.
func (o Opponent) RoundPoints(rng board.Roller, player Stats) Stats {
	return Stats{
		Attack:  o.pool(rng, player.Attack),
		Defence: o.pool(rng, player.Defence),
	}
}

func (o Opponent) pool(rng board.Roller, p int) int {
	floor := 0
	if o.Floor > 0 {
		floor = rng.Intn(o.Floor)
	}
	half := p / 2
	shift := 0
	if half > 0 {
		shift = rng.Intn(2*half) - half
	}
	if p+shift > floor {
		return p + shift
	}
	return floor
}
