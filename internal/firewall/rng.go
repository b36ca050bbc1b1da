package firewall

// RandomSource yields uniform integers. Intn returns a value in [0, n).
type RandomSource interface {
	Intn(n int) int
}

// SimpleRNG is a deterministic 64-bit LCG.
// Its whole state is one word, so snapshots can carry it.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// next advances the generator and returns the high bits, which have far
// better period than the low bits of a power-of-two LCG.
func (r *SimpleRNG) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state >> 33
}

// Intn returns a random int in [0, n). Non-positive n yields 0.
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n)) //#nosec G115 -- n is always positive
}

// State returns the generator state.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
