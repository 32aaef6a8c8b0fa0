package app

import "testing"

func TestStateString(t *testing.T) {
	cases := map[State]string{
		StateCreated:   "created",
		StateStarted:   "started",
		StateResumed:   "resumed",
		StatePaused:    "paused",
		StateStopped:   "stopped",
		StateDestroyed: "destroyed",
		State(99):      "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}

func TestTransitionGraph(t *testing.T) {
	legal := map[State][]State{
		StateCreated:   {StateStarted},
		StateStarted:   {StateResumed, StateStopped},
		StateResumed:   {StatePaused},
		StatePaused:    {StateResumed, StateStopped},
		StateStopped:   {StateStarted, StateDestroyed},
		StateDestroyed: {},
	}
	all := []State{StateCreated, StateStarted, StateResumed, StatePaused, StateStopped, StateDestroyed}
	for _, from := range all {
		allowed := make(map[State]bool)
		for _, to := range legal[from] {
			allowed[to] = true
		}
		for _, to := range all {
			if got := canTransition(from, to); got != allowed[to] {
				t.Errorf("canTransition(%v, %v) = %v, want %v", from, to, got, allowed[to])
			}
		}
	}
}

func TestDestroyedIsTerminal(t *testing.T) {
	for _, to := range []State{StateCreated, StateStarted, StateResumed, StatePaused, StateStopped, StateDestroyed} {
		if canTransition(StateDestroyed, to) {
			t.Errorf("destroyed must have no outgoing edge, found destroyed -> %v", to)
		}
	}
}
