package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionActivate        // Space, Up, Enter, left click - start, jump, restart
	ActionExit            // Q, Esc, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionExit:
		return "Exit"
	default:
		return "Unknown"
	}
}
