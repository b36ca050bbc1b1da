package firewall

// DifficultyController owns the single linear ramp. Session.Difficulty is the
// number of ticks between threat waves; it only ever decreases, and never
// below one.
type DifficultyController struct {
	stepEvery int
}

// NewDifficultyController creates a controller that steps every n ticks.
func NewDifficultyController(stepEvery int) DifficultyController {
	return DifficultyController{stepEvery: max(stepEvery, 1)}
}

// Step lowers the difficulty when the tick counter lands on a step boundary.
// It reports whether the difficulty changed.
func (d DifficultyController) Step(s *Session) bool {
	if s.TickCounter == 0 || s.TickCounter%d.stepEvery != 0 || s.Difficulty <= 1 {
		return false
	}
	s.Difficulty--
	return true
}

// IsWave reports whether threats move on the current tick.
func (d DifficultyController) IsWave(s Session) bool {
	return s.TickCounter%max(s.Difficulty, 1) == 0
}
