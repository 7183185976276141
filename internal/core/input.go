package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate their own key events into actions.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow - steer left
	ActionRight        // Right arrow - steer right
	ActionUp           // Up arrow - drive forward (up the screen)
	ActionDown         // Down arrow - brake (down the screen)
	ActionQuit         // Frontend close request; never reaches the session
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// steeringPriority is the order in which held directions are resolved.
// Only the first held direction is applied in a frame.
var steeringPriority = [...]Action{ActionLeft, ActionRight, ActionUp, ActionDown}

// InputFrame represents the held-key state during one frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// InputOf builds a frame with the given actions held.
func InputOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Steering returns the single direction to apply this frame,
// resolving simultaneous keys as Left, Right, Up, Down.
// Returns ActionNone when no direction is held.
func (f InputFrame) Steering() Action {
	for _, a := range steeringPriority {
		if f.Has(a) {
			return a
		}
	}
	return ActionNone
}
