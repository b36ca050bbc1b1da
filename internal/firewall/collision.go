package firewall

// CollisionResult counts what one resolution pass did.
type CollisionResult struct {
	Hits      int // Projectiles consumed by a threat
	Kills     int // Threats destroyed
	BossKills int
	Collected int // Power-ups picked up by the player
	Dropped   int // Power-ups that fell past the bottom edge
}

// CollisionResolver applies the contact rules between entities.
type CollisionResolver struct {
	params Params
}

// NewCollisionResolver creates a resolver for the given grid.
func NewCollisionResolver(p Params) CollisionResolver {
	return CollisionResolver{params: p}
}

// Resolve runs projectile-threat hits and then the power-up pass.
// Removed entities are only marked; the caller compacts the store.
func (c CollisionResolver) Resolve(s *Session, store *EntityStore) CollisionResult {
	var res CollisionResult
	c.resolveHits(s, store, &res)
	c.advancePowerUps(s, store, &res)
	return res
}

// resolveHits lets each projectile strike the first live threat in its cell.
// A projectile is consumed by its first match, so it never hits two threats.
func (c CollisionResolver) resolveHits(s *Session, store *EntityStore, res *CollisionResult) {
	for pi := range store.projectiles {
		p := &store.projectiles[pi]
		if p.dead {
			continue
		}
		for ti := range store.threats {
			t := &store.threats[ti]
			if t.dead || t.X != p.X || t.Y != p.Y {
				continue
			}

			p.dead = true
			t.HP--
			res.Hits++
			if t.HP <= 0 {
				t.dead = true
				s.Score++
				res.Kills++
				if t.IsBoss {
					s.BossActive = false
					res.BossKills++
				}
			}
			break
		}
	}
}

// advancePowerUps moves every power-up down one row, collecting those that
// land on the player and dropping those that leave the grid.
func (c CollisionResolver) advancePowerUps(s *Session, store *EntityStore, res *CollisionResult) {
	row := c.params.PlayerRow()
	for i := range store.powerUps {
		pu := &store.powerUps[i]
		if pu.dead {
			continue
		}
		pu.Y++
		switch {
		case pu.Y == row && pu.X == s.PlayerX:
			pu.dead = true
			s.ShieldActive = true
			res.Collected++
		case pu.Y >= c.params.Height:
			pu.dead = true
			res.Dropped++
		}
	}
}

// EdgeReached applies the effect of a threat breaching the player edge.
// A shield absorbs the breach; otherwise the player loses one health.
// It reports whether damage was taken.
func (c CollisionResolver) EdgeReached(s *Session) bool {
	if s.ShieldActive {
		s.ShieldActive = false
		return false
	}
	s.Health = max(s.Health-1, 0)
	return true
}
