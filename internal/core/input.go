package core

// Action represents a semantic game action, abstracted from physical key presses.
// Front-ends translate keys and clicks into actions; the game only sees intents.
type Action int

const (
	ActionNone       Action = iota
	ActionRock              // R, 1 - pick rock
	ActionPaper             // P, 2 - pick paper
	ActionScissors          // S, 3 - pick scissors
	ActionReset             // X - reset scores
	ActionTargetUp          // +, = - raise the target wins
	ActionTargetDown        // - - lower the target wins
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - go back to menu
	ActionQuit              // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRock:
		return "Rock"
	case ActionPaper:
		return "Paper"
	case ActionScissors:
		return "Scissors"
	case ActionReset:
		return "Reset"
	case ActionTargetUp:
		return "TargetUp"
	case ActionTargetDown:
		return "TargetDown"
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

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
