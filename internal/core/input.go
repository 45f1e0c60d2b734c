package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move left
	ActionRight          // Right arrow, D - move right
	ActionUp             // Up arrow, W - move up (hub only)
	ActionDown           // Down arrow, S - move down (hub only)
	ActionFire           // Space - fire (boss encounter)
	ActionConfirm        // Space, Enter - start, restart
	ActionSelect1        // 1 - shooting drill
	ActionSelect2        // 2 - dodging drill
	ActionSelect3        // 3 - reaction drill
	ActionSelect4        // 4 - boss encounter
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionSelect1:
		return "Select1"
	case ActionSelect2:
		return "Select2"
	case ActionSelect3:
		return "Select3"
	case ActionSelect4:
		return "Select4"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
//
// Held actions are keys currently down (movement, fire). Pressed actions
// went down during this tick (confirm, menu selection). Clicks are pointer
// presses in field pixels, in the order they happened.
type InputFrame struct {
	held    map[Action]bool
	pressed map[Action]bool
	Clicks  []Point
	Quit    bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// Press marks an action as pressed this frame. A pressed action is also held.
func (f *InputFrame) Press(a Action) {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	f.pressed[a] = true
	f.Hold(a)
}

// Click queues a pointer click at the given field position.
func (f *InputFrame) Click(x, y float64) {
	f.Clicks = append(f.Clicks, Point{X: x, Y: y})
}

// Held returns true if the action is down this frame.
func (f InputFrame) Held(a Action) bool {
	return f.held[a]
}

// Pressed returns true if the action went down this frame.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed[a]
}
