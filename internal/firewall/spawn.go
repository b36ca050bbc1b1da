package firewall

// SpawnPolicy adds new entities once per threat wave.
type SpawnPolicy struct {
	params Params
	rng    RandomSource
}

// NewSpawnPolicy creates a spawn policy drawing from rng.
func NewSpawnPolicy(p Params, rng RandomSource) SpawnPolicy {
	return SpawnPolicy{params: p, rng: rng}
}

// TrySpawn runs the three independent spawn checks in a fixed order: threat,
// power-up, boss. The random draws are consumed in that order too, so a given
// seed always produces the same waves. It reports whether a boss appeared.
func (sp SpawnPolicy) TrySpawn(s *Session, store *EntityStore) bool {
	if sp.roll(sp.params.ThreatChance) {
		store.AddThreat(Threat{X: sp.rng.Intn(sp.params.Width), Y: 0, HP: 1})
	}

	if sp.roll(sp.params.PowerUpChance) {
		store.AddPowerUp(PowerUp{X: sp.rng.Intn(sp.params.Width), Y: 0})
	}

	if s.BossActive || s.Score < sp.params.BossScore {
		return false
	}
	store.AddThreat(Threat{
		X:      sp.params.CenterColumn(),
		Y:      0,
		HP:     sp.params.BossHP,
		IsBoss: true,
	})
	s.BossActive = true
	return true
}

// roll draws one percentile and reports whether it falls under chance.
func (sp SpawnPolicy) roll(chance int) bool {
	return sp.rng.Intn(100) < chance
}
