package core

// Action is a discrete input intent, abstracted from physical key presses.
// Hosts translate keys into actions; games translate actions into engine calls.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, A
	ActionRight           // Right arrow, D
	ActionSoftDrop        // Down arrow, S
	ActionHardDrop        // Space
	ActionRotate          // Up arrow, W
	ActionHold            // C
	ActionPause           // P
	ActionRestart         // R
	ActionConfirm         // Enter - menu selection
	ActionBack            // Escape, B - back to menu
	ActionQuit            // Q, Ctrl+C
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
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotate:
		return "Rotate"
	case ActionHold:
		return "Hold"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation frame.
// Actions are kept in arrival order: two Left presses in one frame move twice.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Add appends an action to the frame.
func (f *InputFrame) Add(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}
