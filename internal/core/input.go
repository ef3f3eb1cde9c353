package core

// Action represents a discrete logical command, abstracted from physical
// key presses. Presenters must set an action at most once per physical press.
type Action int

const (
	ActionNone      Action = iota
	ActionConfirm          // Enter - confirm name, start, restart
	ActionBackspace        // Backspace - delete last name character
	ActionQuit             // Ctrl+C, Esc - close the presenter (not seen by the game)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBackspace:
		return "Backspace"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the logical input snapshot for a single frame.
//
// It carries edge-triggered actions, an optional pointer X coordinate in
// playfield units (absent means the paddle does not move this frame) and
// at most one typed character.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	pointerX   float64
	hasPointer bool
	char       rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPointer records the pointer X coordinate for this frame.
func (f *InputFrame) SetPointer(x float64) {
	f.pointerX = x
	f.hasPointer = true
}

// Pointer returns the pointer X coordinate and whether one was recorded.
func (f InputFrame) Pointer() (float64, bool) {
	return f.pointerX, f.hasPointer
}

// Type records a typed character. Only the first character of a frame is
// kept; it returns false if the frame already holds one.
func (f *InputFrame) Type(r rune) bool {
	if f.char != 0 || r == 0 {
		return false
	}
	f.char = r
	return true
}

// Typed returns the character typed this frame, if any.
func (f InputFrame) Typed() (rune, bool) {
	return f.char, f.char != 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.pointerX = 0
	f.hasPointer = false
	f.char = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.pointerX = f.pointerX
	clone.hasPointer = f.hasPointer
	clone.char = f.char
	return clone
}

// InputQueue buffers logical events that arrive between frames (key
// repeats, fast typing) and releases them frame by frame.
//
// The game applies a frame's events in a fixed order: backspace, typed
// rune, confirm. Drain releases the longest queue prefix that fits that
// order, so "a", "b", Enter typed within one frame arrive as "a" then
// "b"+Enter and nothing is lost or reordered.
type InputQueue struct {
	events []queuedEvent
}

type queuedEvent struct {
	action Action
	char   rune
}

// rank is the position of the event in the per-frame application order.
func (e queuedEvent) rank() int {
	switch {
	case e.char != 0:
		return 1
	case e.action == ActionBackspace:
		return 0
	default:
		return 2
	}
}

// PushAction queues an edge-triggered action. Only Confirm and Backspace
// are queued; other actions are handled by the presenter directly.
func (q *InputQueue) PushAction(a Action) {
	if a != ActionConfirm && a != ActionBackspace {
		return
	}
	q.events = append(q.events, queuedEvent{action: a})
}

// PushRune queues a typed character.
func (q *InputQueue) PushRune(r rune) {
	if r == 0 {
		return
	}
	q.events = append(q.events, queuedEvent{char: r})
}

// Len returns the number of queued events.
func (q *InputQueue) Len() int {
	return len(q.events)
}

// Reset drops all queued events.
func (q *InputQueue) Reset() {
	q.events = q.events[:0]
}

// Drain moves the next frame's worth of events into f.
func (q *InputQueue) Drain(f *InputFrame) {
	last := -1
	n := 0
	for _, e := range q.events {
		r := e.rank()
		if r <= last {
			break
		}
		if e.char != 0 {
			f.Type(e.char)
		} else {
			f.Set(e.action)
		}
		last = r
		n++
	}
	q.events = append(q.events[:0], q.events[n:]...)
}
