// Package config provides YAML-based configuration loading for the firewall
// engine: grid size, player limits, spawn odds, and the difficulty ramp.
package config

import (
	"fmt"
	"time"
)

// Config contains all tunable parameters of a firewall session.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Player     PlayerConfig     `yaml:"player"`
	Timing     TimingConfig     `yaml:"timing"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the playfield. The player occupies the bottom row.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines player limits.
type PlayerConfig struct {
	MaxHealth    int `yaml:"max_health"`
	FireCooldown int `yaml:"fire_cooldown"` // Ticks between shots
}

// TimingConfig defines host scheduling cadence.
type TimingConfig struct {
	TickRate      int           `yaml:"tick_rate"`      // Main loop ticks per second
	FlashDuration time.Duration `yaml:"flash_duration"` // How long the damage flash stays up
}

// TickInterval returns the main loop period derived from TickRate.
func (t TimingConfig) TickInterval() time.Duration {
	if t.TickRate <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(t.TickRate)
}

// SpawnConfig defines per-wave spawn odds and the boss encounter.
type SpawnConfig struct {
	ThreatChance  int `yaml:"threat_chance"`  // Percent per wave
	PowerUpChance int `yaml:"powerup_chance"` // Percent per wave
	BossScore     int `yaml:"boss_score"`     // Score at which bosses start appearing
	BossHP        int `yaml:"boss_hp"`
}

// DifficultyConfig defines the single linear ramp. Difficulty is the number of
// ticks between threat waves, so lower is faster.
type DifficultyConfig struct {
	Initial   int `yaml:"initial"`
	StepEvery int `yaml:"step_every"` // Ticks between decrements
}

// Validate rejects configurations the engine cannot run.
func (c Config) Validate() error {
	switch {
	case c.Grid.Width < 3 || c.Grid.Height < 3:
		return fmt.Errorf("config: grid must be at least 3x3, got %dx%d", c.Grid.Width, c.Grid.Height)
	case c.Player.MaxHealth < 1:
		return fmt.Errorf("config: player.max_health must be positive, got %d", c.Player.MaxHealth)
	case c.Player.FireCooldown < 0:
		return fmt.Errorf("config: player.fire_cooldown must not be negative, got %d", c.Player.FireCooldown)
	case c.Timing.TickRate < 1:
		return fmt.Errorf("config: timing.tick_rate must be positive, got %d", c.Timing.TickRate)
	case c.Timing.FlashDuration <= 0:
		return fmt.Errorf("config: timing.flash_duration must be positive, got %s", c.Timing.FlashDuration)
	case !validChance(c.Spawn.ThreatChance):
		return fmt.Errorf("config: spawn.threat_chance must be within 0..100, got %d", c.Spawn.ThreatChance)
	case !validChance(c.Spawn.PowerUpChance):
		return fmt.Errorf("config: spawn.powerup_chance must be within 0..100, got %d", c.Spawn.PowerUpChance)
	case c.Spawn.BossScore < 0:
		return fmt.Errorf("config: spawn.boss_score must not be negative, got %d", c.Spawn.BossScore)
	case c.Spawn.BossHP < 1:
		return fmt.Errorf("config: spawn.boss_hp must be positive, got %d", c.Spawn.BossHP)
	case c.Difficulty.Initial < 1:
		return fmt.Errorf("config: difficulty.initial must be at least 1, got %d", c.Difficulty.Initial)
	case c.Difficulty.StepEvery < 1:
		return fmt.Errorf("config: difficulty.step_every must be positive, got %d", c.Difficulty.StepEvery)
	}
	return nil
}

func validChance(p int) bool {
	return p >= 0 && p <= 100
}
