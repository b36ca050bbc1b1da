package firewall

import "testing"

func TestSimpleRNGDeterministic(t *testing.T) {
	a := NewSimpleRNG(12345)
	b := NewSimpleRNG(12345)
	for i := range 100 {
		if x, y := a.Intn(100), b.Intn(100); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
	if a.State() != b.State() {
		t.Error("states diverged")
	}
}

func TestSimpleRNGBounds(t *testing.T) {
	r := NewSimpleRNG(0)
	seen := make(map[int]bool)
	for range 2000 {
		v := r.Intn(15)
		if v < 0 || v >= 15 {
			t.Fatalf("Intn(15) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 15 {
		t.Errorf("only %d of 15 columns drawn", len(seen))
	}
	if r.Intn(0) != 0 || r.Intn(-3) != 0 {
		t.Error("non-positive bound should yield 0")
	}
}
