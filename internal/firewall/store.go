package firewall

// EntityStore owns the live threats, projectiles, and power-ups.
//
// Removal during a pass only marks an entity dead; Compact drops dead entries
// afterwards while preserving the order of the survivors. Passes therefore
// never invalidate the slices they iterate over.
type EntityStore struct {
	threats     []threatSlot
	projectiles []projectileSlot
	powerUps    []powerUpSlot
}

type threatSlot struct {
	Threat
	dead bool
}

type projectileSlot struct {
	Projectile
	dead bool
}

type powerUpSlot struct {
	PowerUp
	dead bool
}

// NewEntityStore creates an empty store.
func NewEntityStore() *EntityStore {
	return &EntityStore{
		threats:     make([]threatSlot, 0, 32),
		projectiles: make([]projectileSlot, 0, 16),
		powerUps:    make([]powerUpSlot, 0, 4),
	}
}

// Clear removes every entity.
func (s *EntityStore) Clear() {
	s.threats = s.threats[:0]
	s.projectiles = s.projectiles[:0]
	s.powerUps = s.powerUps[:0]
}

// AddThreat appends a threat.
func (s *EntityStore) AddThreat(t Threat) {
	s.threats = append(s.threats, threatSlot{Threat: t})
}

// AddProjectile appends a projectile.
func (s *EntityStore) AddProjectile(p Projectile) {
	s.projectiles = append(s.projectiles, projectileSlot{Projectile: p})
}

// AddPowerUp appends a power-up.
func (s *EntityStore) AddPowerUp(p PowerUp) {
	s.powerUps = append(s.powerUps, powerUpSlot{PowerUp: p})
}

// Compact drops every entity marked dead.
func (s *EntityStore) Compact() {
	threats := s.threats[:0]
	for _, t := range s.threats {
		if !t.dead {
			threats = append(threats, t)
		}
	}
	s.threats = threats

	projectiles := s.projectiles[:0]
	for _, p := range s.projectiles {
		if !p.dead {
			projectiles = append(projectiles, p)
		}
	}
	s.projectiles = projectiles

	powerUps := s.powerUps[:0]
	for _, p := range s.powerUps {
		if !p.dead {
			powerUps = append(powerUps, p)
		}
	}
	s.powerUps = powerUps
}

// Threats returns a copy of the live threats in store order.
func (s *EntityStore) Threats() []Threat {
	out := make([]Threat, 0, len(s.threats))
	for _, t := range s.threats {
		if !t.dead {
			out = append(out, t.Threat)
		}
	}
	return out
}

// Projectiles returns a copy of the live projectiles in store order.
func (s *EntityStore) Projectiles() []Projectile {
	out := make([]Projectile, 0, len(s.projectiles))
	for _, p := range s.projectiles {
		if !p.dead {
			out = append(out, p.Projectile)
		}
	}
	return out
}

// PowerUps returns a copy of the live power-ups in store order.
func (s *EntityStore) PowerUps() []PowerUp {
	out := make([]PowerUp, 0, len(s.powerUps))
	for _, p := range s.powerUps {
		if !p.dead {
			out = append(out, p.PowerUp)
		}
	}
	return out
}

// BossCount returns the number of live boss threats.
func (s *EntityStore) BossCount() int {
	n := 0
	for _, t := range s.threats {
		if !t.dead && t.IsBoss {
			n++
		}
	}
	return n
}
