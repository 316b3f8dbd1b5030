// Package engine drives a match-3 board as a cooperative, tick-driven state
// machine. Player input starts transitions (swaps, powerup taps, shuffles);
// each transition is scheduled on the Scheduler and resolved by its
// continuation, so the outcome of a move is known only after the matching
// animation time has elapsed. Observers follow along through the Bus.
//
// An Engine is not safe for concurrent use. All calls, including Tick, must
// come from the goroutine that owns it.
package engine

import (
	"errors"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

var (
	// ErrNotStarted is returned by Tick before Start.
	ErrNotStarted = errors.New("engine: not started")
	// ErrBusy is returned when a request needs an idle board.
	ErrBusy = errors.New("engine: board is busy")
)

// Engine owns one board and everything in flight on it.
type Engine struct {
	cfg   Config
	gen   *board.Generator
	grid  *board.Grid
	sched *Scheduler
	bus   *Bus
	chain chain
	hints board.HintSet

	started  bool
	locked   bool // board entry/exit animation or pending shuffle
	inflight int  // swaps, pending falls and settling columns
	settling map[int]Handle
	err      error
}

// New creates an engine. Nothing is generated until Start.
func New(cfg Config, rng board.Roller) *Engine {
	gen := board.NewGenerator(cfg.Board, rng)
	cfg.Board = gen.Params()
	return &Engine{
		cfg:      cfg,
		gen:      gen,
		sched:    NewScheduler(),
		bus:      NewBus(),
		chain:    newChain(),
		hints:    board.NewHintSet(),
		settling: make(map[int]Handle),
		locked:   true,
	}
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Subscribe registers a listener for engine events.
func (e *Engine) Subscribe(l Listener) Subscription {
	return e.bus.Subscribe(l)
}

// Unsubscribe removes a listener.
func (e *Engine) Unsubscribe(s Subscription) bool {
	return e.bus.Unsubscribe(s)
}

// Start generates a fresh board and plays the entry animation. Input is
// accepted once the animation completes. Start may be called again after
// Reset to begin a new round.
func (e *Engine) Start() error {
	e.sched.CancelAll()
	e.settling = make(map[int]Handle)
	e.inflight = 0
	e.chain = newChain()
	e.err = nil

	g, err := e.gen.Generate()
	if err != nil {
		e.locked = true
		return err
	}
	e.grid = g
	e.started = true
	e.hints = board.NewHintSet()
	e.publishBoard()
	e.animateBoard(-g.Rows(), 0, e.cfg.BoardSpawnTicks, e.unlock)
	return nil
}

// Tick advances the simulation by one tick. It returns a generation failure
// raised by a reshuffle that ran inside a continuation.
func (e *Engine) Tick() error {
	if !e.started {
		return ErrNotStarted
	}
	if e.err != nil {
		return e.err
	}
	e.sched.Advance()
	if n := e.cfg.PowerupSwitchTicks; n > 0 && e.sched.Now()%uint64(n) == 0 {
		e.cyclePowerups()
	}
	return e.err
}

// RunUntilIdle ticks until the board accepts input again or maxTicks ticks
// have passed. It returns the number of ticks run and ErrBusy if the board
// never settled.
func (e *Engine) RunUntilIdle(maxTicks int) (int, error) {
	for n := 0; n < maxTicks; n++ {
		if e.CanInteract() {
			return n, nil
		}
		if err := e.Tick(); err != nil {
			return n, err
		}
	}
	if e.CanInteract() {
		return maxTicks, nil
	}
	return maxTicks, ErrBusy
}

// Reset aborts everything in flight: pending continuations are cancelled,
// every transient flag is cleared and slots left empty by an interrupted
// cascade are refilled. The active chain is flushed first. The board stays
// locked until the next Start.
func (e *Engine) Reset() {
	e.FlushChain()
	e.sched.CancelAll()
	e.settling = make(map[int]Handle)
	e.inflight = 0
	e.locked = true
	e.chain.handle = 0
	if e.grid == nil {
		return
	}
	e.grid.Each(func(c *board.Cell) {
		c.ClearFlags()
		if c.IsEmpty() {
			c.Type = e.gen.RandomType()
			c.Powerup = false
		}
	})
	e.publishBoard()
}

// CanInteract reports whether player input is accepted right now.
func (e *Engine) CanInteract() bool {
	return e.started && e.err == nil && !e.locked && e.inflight == 0
}

// Busy reports whether a swap or cascade is still resolving.
func (e *Engine) Busy() bool {
	return e.inflight > 0
}

// Locked reports whether a board animation or shuffle holds the input lock.
func (e *Engine) Locked() bool {
	return e.locked
}

// Grid returns the live board. Callers must treat it as read-only.
func (e *Engine) Grid() *board.Grid {
	return e.grid
}

// Now returns the current simulation tick.
func (e *Engine) Now() uint64 {
	return e.sched.Now()
}

// Pending returns the number of scheduled continuations.
func (e *Engine) Pending() int {
	return e.sched.Pending()
}

// Hints returns the legal moves found at the last settle.
func (e *Engine) Hints() board.HintSet {
	return e.hints
}

// ContainsHint reports whether c had a legal move at the last settle.
func (e *Engine) ContainsHint(c board.Coord) bool {
	return e.hints.Contains(c)
}

// RequestHint returns one coordinate with a legal move.
func (e *Engine) RequestHint() (board.Coord, bool) {
	if !e.CanInteract() || e.hints.Len() == 0 {
		return board.Coord{}, false
	}
	return e.hints.Coords()[0], true
}

// Select marks c as the player's selected cell and clears any previous
// selection. It fails on cells that cannot be swapped.
func (e *Engine) Select(c board.Coord) bool {
	if !e.CanInteract() || !e.grid.InBounds(c) || !board.Swappable(e.grid.At(c)) {
		return false
	}
	e.ClearSelection()
	cell := e.grid.At(c)
	cell.State = board.Selected
	e.publishCell(cell)
	return true
}

// ClearSelection returns every selected cell to Normal.
func (e *Engine) ClearSelection() {
	if e.grid == nil {
		return
	}
	e.grid.Each(func(c *board.Cell) {
		if c.State == board.Selected {
			c.State = board.Normal
			e.publishCell(c)
		}
	})
}

// Selected returns the selected cell, if any.
func (e *Engine) Selected() (board.Coord, bool) {
	var at board.Coord
	found := false
	if e.grid != nil {
		e.grid.Each(func(c *board.Cell) {
			if !found && c.State == board.Selected {
				at, found = c.Coord(), true
			}
		})
	}
	return at, found
}

// animateBoard locks input, announces a whole-board slide and runs then when
// it completes.
func (e *Engine) animateBoard(startRow, endRow, ticks int, then func()) {
	e.locked = true
	h := e.sched.After(ticks, then)
	e.bus.Publish(BoardAnimated{Handle: h, StartRow: startRow, EndRow: endRow, Duration: ticks})
}

func (e *Engine) unlock() {
	e.locked = false
	e.idle()
}

// idle runs when a continuation finishes. Once nothing is in flight it
// refreshes the hint scan and either reopens input or forces a reshuffle.
func (e *Engine) idle() {
	if e.locked || e.inflight > 0 {
		return
	}
	e.refreshHints()
	if e.hints.Len() > 0 {
		e.bus.Publish(Settled{})
		return
	}
	if err := e.beginShuffle(true); err != nil {
		e.locked = true
		e.err = err
	}
}

func (e *Engine) refreshHints() {
	e.hints = board.FindHints(e.grid)
	e.bus.Publish(HintsUpdated{Count: e.hints.Len()})
}

// cyclePowerups advances every idle powerup to the next tile kind.
func (e *Engine) cyclePowerups() {
	if e.grid == nil {
		return
	}
	kinds := e.cfg.Board.Kinds
	e.grid.Each(func(c *board.Cell) {
		if !c.Powerup || c.Busy() || c.IsEmpty() {
			return
		}
		next := c.Type + 1
		if int(next) > kinds {
			next = 1
		}
		c.Type = next
		e.publishCell(c)
	})
}

func (e *Engine) publishCell(c *board.Cell) {
	e.bus.Publish(CellChanged{At: c.Coord(), Type: c.Type, Powerup: c.Powerup, State: c.State})
}

func (e *Engine) publishBoard() {
	e.grid.Each(e.publishCell)
}
