package firewall

import (
	"testing"

	"github.com/vovakirdan/firewall/internal/config"
)

func newResolver() (CollisionResolver, Params) {
	p := ParamsFromConfig(config.DefaultConfig())
	return NewCollisionResolver(p), p
}

func TestProjectileHitsFirstThreatOnly(t *testing.T) {
	c, _ := newResolver()
	store := NewEntityStore()
	store.AddThreat(Threat{X: 3, Y: 3, HP: 1})
	store.AddThreat(Threat{X: 3, Y: 3, HP: 1})
	store.AddProjectile(Projectile{X: 3, Y: 3})
	var s Session

	res := c.Resolve(&s, store)
	store.Compact()

	if res.Hits != 1 || res.Kills != 1 {
		t.Errorf("hits=%d kills=%d, want 1 and 1", res.Hits, res.Kills)
	}
	if got := store.Threats(); len(got) != 1 {
		t.Errorf("stacked threats remaining = %d, want 1", len(got))
	}
	if s.Score != 1 {
		t.Errorf("score = %d, want 1", s.Score)
	}
}

func TestTwoProjectilesHitStackedThreats(t *testing.T) {
	c, _ := newResolver()
	store := NewEntityStore()
	store.AddThreat(Threat{X: 3, Y: 3, HP: 1})
	store.AddThreat(Threat{X: 3, Y: 3, HP: 1})
	store.AddProjectile(Projectile{X: 3, Y: 3})
	store.AddProjectile(Projectile{X: 3, Y: 3})
	var s Session

	c.Resolve(&s, store)
	store.Compact()

	if len(store.Threats()) != 0 || len(store.Projectiles()) != 0 {
		t.Errorf("threats %+v projectiles %+v, want none", store.Threats(), store.Projectiles())
	}
	if s.Score != 2 {
		t.Errorf("score = %d, want 2", s.Score)
	}
}

func TestProjectileMissesOtherCells(t *testing.T) {
	c, _ := newResolver()
	store := NewEntityStore()
	store.AddThreat(Threat{X: 3, Y: 3, HP: 1})
	store.AddProjectile(Projectile{X: 3, Y: 4})
	store.AddProjectile(Projectile{X: 4, Y: 3})
	var s Session

	res := c.Resolve(&s, store)

	if res.Hits != 0 {
		t.Errorf("hits = %d, want 0", res.Hits)
	}
	if len(store.Threats()) != 1 || len(store.Projectiles()) != 2 {
		t.Error("nothing should be removed")
	}
}

func TestPowerUps(t *testing.T) {
	_, p := newResolver()
	row := p.PlayerRow()

	tests := []struct {
		name       string
		powerUp    PowerUp
		playerX    int
		wantShield bool
		wantLeft   []PowerUp
	}{
		{"falls", PowerUp{X: 2, Y: 3}, 7, false, []PowerUp{{X: 2, Y: 4}}},
		{"collected", PowerUp{X: 7, Y: row - 1}, 7, true, nil},
		{"misses player", PowerUp{X: 6, Y: row - 1}, 7, false, []PowerUp{{X: 6, Y: row}}},
		{"leaves grid", PowerUp{X: 6, Y: row}, 7, false, nil},
		{"player moved under it late", PowerUp{X: 7, Y: row}, 7, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newResolver()
			store := NewEntityStore()
			store.AddPowerUp(tt.powerUp)
			s := Session{PlayerX: tt.playerX}

			res := c.Resolve(&s, store)
			store.Compact()

			if s.ShieldActive != tt.wantShield {
				t.Errorf("shield = %v, want %v", s.ShieldActive, tt.wantShield)
			}
			if tt.wantShield && res.Collected != 1 {
				t.Errorf("collected = %d, want 1", res.Collected)
			}
			if !equalSlices(store.PowerUps(), tt.wantLeft) {
				t.Errorf("power-ups = %+v, want %+v", store.PowerUps(), tt.wantLeft)
			}
		})
	}
}

func TestEdgeReached(t *testing.T) {
	c, _ := newResolver()

	tests := []struct {
		name       string
		in         Session
		wantHealth int
		wantShield bool
		wantDamage bool
	}{
		{"unshielded", Session{Health: 5}, 4, false, true},
		{"shielded", Session{Health: 5, ShieldActive: true}, 5, false, false},
		{"last health", Session{Health: 1}, 0, false, true},
		{"already zero", Session{Health: 0}, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.in
			damaged := c.EdgeReached(&s)
			if damaged != tt.wantDamage {
				t.Errorf("damaged = %v, want %v", damaged, tt.wantDamage)
			}
			if s.Health != tt.wantHealth || s.ShieldActive != tt.wantShield {
				t.Errorf("health=%d shield=%v, want %d %v", s.Health, s.ShieldActive, tt.wantHealth, tt.wantShield)
			}
		})
	}
}
