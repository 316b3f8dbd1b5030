package board

// GenParams configures board generation.
type GenParams struct {
	Rows          int // Board height
	Cols          int // Board width
	Kinds         int // Number of tile kinds in play (1..MaxKinds)
	PowerupChance int // Percent chance (0-100) of placing one powerup per shuffle
	MaxAttempts   int // Full rerolls allowed before giving up
}

// DefaultGenParams returns the classic 8x8 board with all eight kinds.
func DefaultGenParams() GenParams {
	return GenParams{
		Rows:          8,
		Cols:          8,
		Kinds:         MaxKinds,
		PowerupChance: 25,
		MaxAttempts:   5000,
	}
}

// Generator produces boards with no pre-existing matches and at least one
// legal move.
type Generator struct {
	params GenParams
	rng    Roller
}

// NewGenerator creates a generator. Kinds is clamped to 1..MaxKinds and a
// non-positive attempt bound becomes 1.
func NewGenerator(params GenParams, rng Roller) *Generator {
	if params.Kinds < 1 {
		params.Kinds = 1
	}
	if params.Kinds > MaxKinds {
		params.Kinds = MaxKinds
	}
	if params.MaxAttempts < 1 {
		params.MaxAttempts = 1
	}
	return &Generator{params: params, rng: rng}
}

// Params returns the effective parameters.
func (gen *Generator) Params() GenParams {
	return gen.params
}

// RandomType draws a uniformly random non-empty tile kind.
func (gen *Generator) RandomType() TileType {
	return TileType(1 + gen.rng.Intn(gen.params.Kinds))
}

// Generate builds a fresh playable grid.
func (gen *Generator) Generate() (*Grid, error) {
	g := NewGrid(gen.params.Rows, gen.params.Cols)
	if err := gen.Reshuffle(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Reshuffle rerolls every cell of g in place until the board has no matches
// and at least one legal move, then rolls the powerup placement.
// Transient flags are cleared. On failure g holds the last rejected layout.
func (gen *Generator) Reshuffle(g *Grid) error {
	g.Each(func(c *Cell) {
		c.Powerup = false
		c.ClearFlags()
	})

	for attempt := 1; attempt <= gen.params.MaxAttempts; attempt++ {
		g.Each(func(c *Cell) {
			c.Type = gen.RandomType()
		})
		if HasAnyMatch(g) {
			continue
		}
		if FindHints(g).Len() == 0 {
			continue
		}
		gen.placePowerup(g)
		return nil
	}

	return &GenerationError{
		Rows:     g.Rows(),
		Cols:     g.Cols(),
		Kinds:    gen.params.Kinds,
		Attempts: gen.params.MaxAttempts,
	}
}

// placePowerup rolls 1..100 and, when the roll is within the chance, marks
// one random cell as a powerup.
func (gen *Generator) placePowerup(g *Grid) {
	if gen.params.PowerupChance <= 0 {
		return
	}
	roll := 1 + gen.rng.Intn(100)
	if roll > gen.params.PowerupChance {
		return
	}
	idx := gen.rng.Intn(g.Len())
	g.At(C(idx/g.Cols(), idx%g.Cols())).Powerup = true
}
