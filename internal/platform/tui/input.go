package tui

import "github.com/vovakirdan/magequest/internal/core"

// DefaultLatchMs is how long a key counts as held after its last event.
const DefaultLatchMs = 150

// inputLatch turns terminal key events into held and pressed actions.
// Terminals report presses and auto-repeats but never releases, so a key
// stays held until no event for it has arrived for latchMs. A press is the
// first event for a key that is not already held.
type inputLatch struct {
	latchMs   int64
	heldUntil map[core.Action]int64
	pressed   []core.Action
	clicks    []core.Point
	quit      bool
}

func newInputLatch(latchMs int) *inputLatch {
	return &inputLatch{
		latchMs:   int64(latchMs),
		heldUntil: make(map[core.Action]int64),
	}
}

// key records a key event for a at now.
func (l *inputLatch) key(a core.Action, now int64) {
	if l.heldUntil[a] <= now {
		l.pressed = append(l.pressed, a)
	}
	l.heldUntil[a] = now + l.latchMs
}

func (l *inputLatch) click(p core.Point) {
	l.clicks = append(l.clicks, p)
}

// frame builds the input for the tick at now and drains queued events.
func (l *inputLatch) frame(now int64) core.InputFrame {
	in := core.NewInputFrame()
	for a, until := range l.heldUntil {
		if until > now {
			in.Hold(a)
		} else {
			delete(l.heldUntil, a)
		}
	}
	for _, a := range l.pressed {
		in.Press(a)
	}
	for _, c := range l.clicks {
		in.Click(c.X, c.Y)
	}
	in.Quit = l.quit

	l.pressed = l.pressed[:0]
	l.clicks = l.clicks[:0]
	return in
}
