package scoring

// Consumables are the limited player aids of one game.
type Consumables struct {
	Shuffles      int
	Hints         int
	AttackBoosts  int
	DefenceBoosts int
}

// DefaultConsumables returns three shuffles, three hints and one boost of
// each kind.
func DefaultConsumables() Consumables {
	return Consumables{Shuffles: 3, Hints: 3, AttackBoosts: 1, DefenceBoosts: 1}
}

func use(n *int) bool {
	if *n <= 0 {
		return false
	}
	*n--
	return true
}

// UseShuffle spends a shuffle charge.
func (c *Consumables) UseShuffle() bool { return use(&c.Shuffles) }

// UseHint spends a hint charge.
func (c *Consumables) UseHint() bool { return use(&c.Hints) }

// UseAttackBoost spends an attack boost.
func (c *Consumables) UseAttackBoost() bool { return use(&c.AttackBoosts) }

// UseDefenceBoost spends a defence boost.
func (c *Consumables) UseDefenceBoost() bool { return use(&c.DefenceBoosts) }
