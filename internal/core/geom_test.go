package core

import "testing"

func TestRectEdges(t *testing.T) {
	tests := []struct {
		name          string
		r             Rect
		right, bottom int
	}{
		{"origin", NewRect(0, 0, 10, 5), 10, 5},
		{"offset", NewRect(5, 10, 20, 15), 25, 25},
		{"empty", NewRect(3, 4, 0, 0), 3, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Right(); got != tc.right {
				t.Errorf("Right() = %d, expected %d", got, tc.right)
			}
			if got := tc.r.Bottom(); got != tc.bottom {
				t.Errorf("Bottom() = %d, expected %d", got, tc.bottom)
			}
		})
	}
}

func TestAbs(t *testing.T) {
	for in, want := range map[int]int{5: 5, -5: 5, 0: 0} {
		if got := Abs(in); got != want {
			t.Errorf("Abs(%d) = %d, expected %d", in, got, want)
		}
	}
}
