package firewall

import "testing"

func TestStateMachineTransitions(t *testing.T) {
	var m StateMachine

	if m.Current() != StateTitle {
		t.Fatalf("initial state = %s", m.Current())
	}
	if m.Fail() {
		t.Error("Fail accepted on the title screen")
	}
	if !m.Begin() || m.Current() != StatePlaying {
		t.Fatalf("Begin from title failed, state %s", m.Current())
	}
	if m.Begin() {
		t.Error("Begin accepted while playing")
	}
	if !m.Fail() || m.Current() != StateGameOver {
		t.Fatalf("Fail from playing failed, state %s", m.Current())
	}
	if m.Begin() {
		t.Error("Begin accepted after game over")
	}
	if m.Fail() {
		t.Error("Fail accepted twice")
	}
	m.Reset()
	if m.Current() != StatePlaying {
		t.Errorf("Reset from game over gave %s", m.Current())
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateTitle:    "title",
		StatePlaying:  "playing",
		StateGameOver: "gameover",
		State(42):     "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
