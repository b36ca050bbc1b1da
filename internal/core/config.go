package core

// RuntimeConfig contains host settings passed to the engine at session start.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultSeed matches the fixed seed the game has always shipped with.
const DefaultSeed int64 = 12345

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    DefaultSeed,
	}
}
