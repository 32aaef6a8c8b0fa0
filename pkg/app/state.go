package app

// State is an activity's lifecycle state.
type State int

const (
	StateCreated State = iota
	StateStarted
	StateResumed
	StatePaused
	StateStopped
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateStarted:
		return "started"
	case StateResumed:
		return "resumed"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// transitions is the legal-transition graph. Destroyed is terminal: it has no
// outgoing edges.
var transitions = map[State][]State{
	StateCreated:   {StateStarted},
	StateStarted:   {StateResumed, StateStopped},
	StateResumed:   {StatePaused},
	StatePaused:    {StateResumed, StateStopped},
	StateStopped:   {StateStarted, StateDestroyed},
	StateDestroyed: {},
}

// canTransition reports whether from -> to is an edge of the legal graph.
func canTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
