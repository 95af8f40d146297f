package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - thrust up
	ActionDown           // S, Down arrow - thrust down
	ActionLeft           // A, Left arrow - thrust left
	ActionRight          // D, Right arrow - thrust right
	ActionFire           // Space - hold to fire
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single key transition delivered to a game.
// Down is true for a press and false for a release. Repeat marks presses
// generated by keyboard auto-repeat; games only react to edges, so they skip
// repeated events.
type KeyEvent struct {
	Action Action
	Down   bool
	Repeat bool
}

// InputFrame holds everything a game consumes for one simulation step:
// the key transitions since the previous step, in arrival order, and the
// wall-clock time elapsed since the previous step.
type InputFrame struct {
	Events []KeyEvent
	Dt     float64 // Seconds since the previous step, >= 0
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Events: make([]KeyEvent, 0, 8),
	}
}

// Press records a key-down edge.
func (f *InputFrame) Press(a Action) {
	f.Events = append(f.Events, KeyEvent{Action: a, Down: true})
}

// Release records a key-up edge.
func (f *InputFrame) Release(a Action) {
	f.Events = append(f.Events, KeyEvent{Action: a, Down: false})
}

// Add appends an arbitrary key event.
func (f *InputFrame) Add(ev KeyEvent) {
	f.Events = append(f.Events, ev)
}

// Has returns true if the given action was pressed (non-repeat) this frame.
func (f InputFrame) Has(a Action) bool {
	for _, ev := range f.Events {
		if ev.Action == a && ev.Down && !ev.Repeat {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next step, keeping the event buffer.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
	f.Dt = 0
}
