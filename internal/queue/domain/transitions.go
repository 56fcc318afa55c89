package domain

// Action is an operation that moves a token between lifecycle states.
type Action string

// Token actions.
const (
	ActionCall     Action = "call"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
)

// transitions maps each action to the statuses it may be applied from.
var transitions = map[Action][]Status{
	ActionCall:     {StatusWaiting},
	ActionComplete: {StatusCalled},
	ActionCancel:   {StatusWaiting},
}

// targets maps each action to the status it produces.
var targets = map[Action]Status{
	ActionCall:     StatusCalled,
	ActionComplete: StatusCompleted,
	ActionCancel:   StatusCancelled,
}

// CanTransition reports whether the action may be applied to a token in the
// given status.
func CanTransition(action Action, from Status) bool {
	for _, allowed := range transitions[action] {
		if allowed == from {
			return true
		}
	}
	return false
}

// TargetStatus returns the status the action produces. The second return value
// is false for unknown actions.
func TargetStatus(action Action) (Status, bool) {
	target, ok := targets[action]
	return target, ok
}
