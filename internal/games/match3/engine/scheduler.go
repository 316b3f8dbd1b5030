package engine

// Handle identifies a scheduled continuation. The zero Handle is never issued.
type Handle uint64

type task struct {
	handle Handle
	due    uint64
	fn     func()
}

// Scheduler runs continuations after a number of simulation ticks.
// It is the two-phase transition primitive: starting an animated step returns
// a Handle, and the step's resolution runs as that handle's continuation.
// Not safe for concurrent use; the engine drives it from a single goroutine.
type Scheduler struct {
	now   uint64
	next  Handle
	tasks []task // kept sorted by handle
}

// NewScheduler creates an empty scheduler at tick 0.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current tick.
func (s *Scheduler) Now() uint64 {
	return s.now
}

// After schedules fn to run once ticks simulation ticks have elapsed.
// A non-positive delay runs fn on the next Advance, or in the current one when
// called from inside a running continuation.
func (s *Scheduler) After(ticks int, fn func()) Handle {
	if ticks < 0 {
		ticks = 0
	}
	s.next++
	s.tasks = append(s.tasks, task{handle: s.next, due: s.now + uint64(ticks), fn: fn})
	return s.next
}

// Cancel drops a pending continuation. It reports whether h was pending.
func (s *Scheduler) Cancel(h Handle) bool {
	for i, t := range s.tasks {
		if t.handle == h {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending continuation.
func (s *Scheduler) CancelAll() {
	s.tasks = s.tasks[:0]
}

// Pending returns the number of continuations waiting to run.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Active reports whether h is still waiting to run.
func (s *Scheduler) Active(h Handle) bool {
	for _, t := range s.tasks {
		if t.handle == h {
			return true
		}
	}
	return false
}

// Remaining returns the ticks left before h runs, or 0 if it is not pending.
func (s *Scheduler) Remaining(h Handle) int {
	for _, t := range s.tasks {
		if t.handle == h {
			if t.due <= s.now {
				return 0
			}
			return int(t.due - s.now)
		}
	}
	return 0
}

// Advance moves time forward by one tick and runs every due continuation in
// the order it was scheduled. Continuations scheduled while running with no
// delay also run before Advance returns.
func (s *Scheduler) Advance() {
	s.now++
	for {
		idx := -1
		for i, t := range s.tasks {
			if t.due <= s.now {
				idx = i
				break
			}
		}
		if idx < 0 {
			return
		}
		t := s.tasks[idx]
		s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
		t.fn()
	}
}
