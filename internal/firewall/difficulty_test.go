package firewall

import "testing"

func TestDifficultyStep(t *testing.T) {
	d := NewDifficultyController(300)

	tests := []struct {
		tick, difficulty int
		want             int
		stepped          bool
	}{
		{0, 3, 3, false},
		{299, 3, 3, false},
		{300, 3, 2, true},
		{301, 2, 2, false},
		{600, 2, 1, true},
		{900, 1, 1, false},
		{1200, 1, 1, false},
	}

	for _, tt := range tests {
		s := Session{TickCounter: tt.tick, Difficulty: tt.difficulty}
		stepped := d.Step(&s)
		if stepped != tt.stepped || s.Difficulty != tt.want {
			t.Errorf("tick %d from %d: got %d (stepped %v), want %d (stepped %v)",
				tt.tick, tt.difficulty, s.Difficulty, stepped, tt.want, tt.stepped)
		}
	}
}

func TestIsWave(t *testing.T) {
	d := NewDifficultyController(300)

	tests := []struct {
		tick, difficulty int
		want             bool
	}{
		{1, 3, false},
		{3, 3, true},
		{4, 2, true},
		{5, 2, false},
		{7, 1, true},
	}

	for _, tt := range tests {
		got := d.IsWave(Session{TickCounter: tt.tick, Difficulty: tt.difficulty})
		if got != tt.want {
			t.Errorf("IsWave(tick=%d, difficulty=%d) = %v, want %v", tt.tick, tt.difficulty, got, tt.want)
		}
	}
}
