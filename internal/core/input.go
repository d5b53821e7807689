package core

// Action is a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; the simulation never sees raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, Up, W - upward impulse; also arms an idle run
	ActionPause          // P, Esc - suspend the simulation
	ActionResume         // R - resume from pause
	ActionNewGame        // N - full reset from the pause menu
	ActionQuit           // Q, Ctrl+C - end the session immediately
	ActionConfirm        // Enter - confirm in menus and forms
	ActionBack           // B, Esc - back out of menus
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionNewGame:
		return "NewGame"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// InputFrame holds all actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
