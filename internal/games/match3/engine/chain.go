package engine

// NoChain is the counter value while no chain is active.
const NoChain = -1

// chain is the rolling combo counter. Every resolution step bumps it and
// restarts the timeout; when the timeout fires the chain ends.
type chain struct {
	count  int
	handle Handle
	best   int
}

func newChain() chain {
	return chain{count: NoChain}
}

func (c *chain) active() bool {
	return c.count != NoChain
}

// multiplier returns the factor applied to pending points when the chain ends.
func multiplier(count int) int {
	if count > 1 {
		return count
	}
	return 1
}

// chainStep advances the active chain and restarts its timeout.
func (e *Engine) chainStep() int {
	if e.chain.handle != 0 {
		e.sched.Cancel(e.chain.handle)
	}
	e.chain.count++
	if e.chain.count > e.chain.best {
		e.chain.best = e.chain.count
	}
	e.chain.handle = e.sched.After(e.cfg.ChainTimeoutTicks, e.endChain)
	return e.chain.count
}

func (e *Engine) endChain() {
	count := e.chain.count
	e.chain.count = NoChain
	e.chain.handle = 0
	e.bus.Publish(ChainEnded{Combo: count, Multiplier: multiplier(count)})
}

// FlushChain ends the active chain immediately, if any.
func (e *Engine) FlushChain() {
	if !e.chain.active() {
		return
	}
	e.sched.Cancel(e.chain.handle)
	e.endChain()
}

// Combo returns the active chain counter, or NoChain.
func (e *Engine) Combo() int {
	return e.chain.count
}

// BestCombo returns the highest chain counter reached since the last Start.
func (e *Engine) BestCombo() int {
	return e.chain.best
}
