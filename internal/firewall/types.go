// Package firewall implements the FIREWALL defense shooter simulation: a
// fixed-grid, tick-driven engine where threats descend toward the player,
// projectiles rise to meet them, and power-ups fall to grant a shield.
//
// The engine is single-threaded. Every mutation happens inside Engine.Tick or
// one of the input commands, which the host must call from one event loop.
package firewall

import "github.com/vovakirdan/firewall/internal/config"

// Threat is a hostile entity descending toward the player row.
type Threat struct {
	X, Y   int
	HP     int
	IsBoss bool
}

// Projectile is a player shot moving toward row 0.
type Projectile struct {
	X, Y int
}

// PowerUp descends like a threat and grants a shield when collected.
type PowerUp struct {
	X, Y int
}

// Session holds the player and scoring scalars of one run.
type Session struct {
	PlayerX      int
	Health       int
	Score        int
	ShieldActive bool
	TickCounter  int
	Difficulty   int
	BossActive   bool
	FireCooldown int
}

// Params are the fixed rules of a session, derived from config.Config.
type Params struct {
	Width         int
	Height        int
	MaxHealth     int
	FireCooldown  int
	ThreatChance  int
	PowerUpChance int
	BossScore     int
	BossHP        int
	Difficulty    int
	StepEvery     int
}

// ParamsFromConfig extracts the simulation rules from a configuration.
func ParamsFromConfig(cfg config.Config) Params {
	return Params{
		Width:         cfg.Grid.Width,
		Height:        cfg.Grid.Height,
		MaxHealth:     cfg.Player.MaxHealth,
		FireCooldown:  cfg.Player.FireCooldown,
		ThreatChance:  cfg.Spawn.ThreatChance,
		PowerUpChance: cfg.Spawn.PowerUpChance,
		BossScore:     cfg.Spawn.BossScore,
		BossHP:        cfg.Spawn.BossHP,
		Difficulty:    cfg.Difficulty.Initial,
		StepEvery:     cfg.Difficulty.StepEvery,
	}
}

// PlayerRow is the row the player occupies.
func (p Params) PlayerRow() int {
	return p.Height - 1
}

// CenterColumn is where the player starts and where bosses appear.
func (p Params) CenterColumn() int {
	return p.Width / 2
}

// newSession returns the start-of-game session.
func newSession(p Params) Session {
	return Session{
		PlayerX:    p.CenterColumn(),
		Health:     p.MaxHealth,
		Difficulty: p.Difficulty,
	}
}
