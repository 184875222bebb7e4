package model

// Action is a status change requested from the dashboard.
type Action string

const (
	ActionNext   Action = "next"
	ActionCancel Action = "cancel"
)

// ParseAction maps a raw token onto a known action.
func ParseAction(raw string) (Action, bool) {
	switch a := Action(raw); a {
	case ActionNext, ActionCancel:
		return a, true
	default:
		return "", false
	}
}
