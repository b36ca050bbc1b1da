package firewall

// State is a phase of the game.
type State int

const (
	StateTitle    State = iota // Waiting for the player to begin
	StatePlaying               // Main loop running
	StateGameOver              // Health ran out; waiting for reset
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// StateMachine enforces the legal transitions between game phases:
//
//	Title    -> Playing   on Begin
//	Playing  -> GameOver  on Fail
//	any      -> Playing   on Reset
type StateMachine struct {
	state State
}

// Current returns the current state.
func (m *StateMachine) Current() State {
	return m.state
}

// Begin leaves the title screen. It reports false from any other state.
func (m *StateMachine) Begin() bool {
	if m.state != StateTitle {
		return false
	}
	m.state = StatePlaying
	return true
}

// Reset restarts play from any state.
func (m *StateMachine) Reset() {
	m.state = StatePlaying
}

// Fail ends a running game. It reports false unless the game was playing.
func (m *StateMachine) Fail() bool {
	if m.state != StatePlaying {
		return false
	}
	m.state = StateGameOver
	return true
}
