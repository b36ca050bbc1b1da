package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/firewall.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/firewall.yaml and is the last fallback of Load.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Width:  15,
			Height: 15,
		},
		Player: PlayerConfig{
			MaxHealth:    5,
			FireCooldown: 2,
		},
		Timing: TimingConfig{
			TickRate:      12,
			FlashDuration: 80 * time.Millisecond,
		},
		Spawn: SpawnConfig{
			ThreatChance:  30,
			PowerUpChance: 3,
			BossScore:     15,
			BossHP:        5,
		},
		Difficulty: DifficultyConfig{
			Initial:   3,
			StepEvery: 300,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
