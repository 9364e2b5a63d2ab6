package core

// Action represents a semantic game action, abstracted from physical key
// presses and pointer clicks.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, left click - flap
	ActionStart             // Enter, S, click on the start button - begin an attempt
	ActionQuit              // Q, Ctrl+C - exit
	ActionScreenshot        // Ctrl+S - dump the cell buffer to disk
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
