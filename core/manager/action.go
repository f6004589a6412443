package manager

// Action is a lifecycle command understood by the manager.
type Action string

const (
	ActionStart   Action = "start"
	ActionStop    Action = "stop"
	ActionRestart Action = "restart"
)

// ParseAction returns the lifecycle action named s.
func ParseAction(s string) (Action, bool) {
	switch a := Action(s); a {
	case ActionStart, ActionStop, ActionRestart:
		return a, true
	default:
		return "", false
	}
}
