package core

// Action is a semantic player intent, decoupled from physical keys.
type Action uint8

const (
	ActionNone         Action = iota
	ActionUp                  // Move cursor up
	ActionDown                // Move cursor down
	ActionLeft                // Move cursor left
	ActionRight               // Move cursor right
	ActionSelect              // Pick a tile, swap with the picked one, or fire a powerup
	ActionHint                // Spend a hint charge
	ActionShuffle             // Spend a shuffle charge
	ActionBoostAttack         // Spend the attack boost
	ActionBoostDefence        // Spend the defence boost
	ActionPause
	ActionRestart
	ActionBack
	ActionQuit
	actionCount
)

var actionNames = [...]string{
	ActionNone:         "None",
	ActionUp:           "Up",
	ActionDown:         "Down",
	ActionLeft:         "Left",
	ActionRight:        "Right",
	ActionSelect:       "Select",
	ActionHint:         "Hint",
	ActionShuffle:      "Shuffle",
	ActionBoostAttack:  "BoostAttack",
	ActionBoostDefence: "BoostDefence",
	ActionPause:        "Pause",
	ActionRestart:      "Restart",
	ActionBack:         "Back",
	ActionQuit:         "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions triggered during one simulation tick.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Actions returns the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}
