package firewall

import (
	"hash/fnv"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	rig := newTestRig(t, nil, nil)
	e := rig.engine
	e.store.AddThreat(Threat{X: 7, Y: 2, HP: 5, IsBoss: true})
	e.session.BossActive = true
	e.store.AddThreat(Threat{X: 1, Y: 9, HP: 1})
	e.store.AddPowerUp(PowerUp{X: 4, Y: 4})
	e.Fire()
	e.Tick()

	snap := e.Snapshot()
	data, err := snap.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}

	if got.State != "playing" || got.Session != snap.Session {
		t.Errorf("decoded %s %+v, want playing %+v", got.State, got.Session, snap.Session)
	}
	if !equalSlices(got.Threats, snap.Threats) {
		t.Errorf("threats = %+v, want %+v", got.Threats, snap.Threats)
	}
	if !equalSlices(got.Projectiles, snap.Projectiles) {
		t.Errorf("projectiles = %+v, want %+v", got.Projectiles, snap.Projectiles)
	}
	if !equalSlices(got.PowerUps, snap.PowerUps) {
		t.Errorf("power-ups = %+v, want %+v", got.PowerUps, snap.PowerUps)
	}
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	if _, err := DecodeSnapshot([]byte{0xc1}); err == nil {
		t.Error("expected an error for an invalid msgpack byte")
	}
}

func TestSnapshotHashTracksState(t *testing.T) {
	rig := newTestRig(t, nil, nil)
	e := rig.engine

	h1 := e.Snapshot().Hash()
	if h1 != e.Snapshot().Hash() {
		t.Fatal("hash is not stable")
	}
	e.MoveLeft()
	if e.Snapshot().Hash() == h1 {
		t.Error("hash did not change after the player moved")
	}
}

func TestDeterministicRuns(t *testing.T) {
	cfg := newTestRig(t, nil, nil).cfg

	a := RunHeadless(cfg, 12345, 3000, nil)
	b := RunHeadless(cfg, 12345, 3000, nil)

	if a != b {
		t.Errorf("same seed gave different runs:\n%+v\n%+v", a, b)
	}
	if a.Ticks == 0 {
		t.Error("headless run did not tick")
	}
}

func TestSnapshotHashCoversEncoding(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
	}{
		{"zero", Snapshot{}},
		{"title", Snapshot{State: "title", Session: Session{Health: 5, Difficulty: 3}}},
		{"entities", Snapshot{State: "playing", Threats: []Threat{{X: 1, Y: 2, HP: 1}}, PowerUps: []PowerUp{{X: 3}}}},
	}
	seen := make(map[uint64]string)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.snap.Encode()
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			h := fnv.New64a()
			h.Write(data)
			want := h.Sum64()

			got := tt.snap.Hash()
			if got != want {
				t.Errorf("Hash() = %x, want FNV-1a of encoding %x", got, want)
			}
			if got == 0 {
				t.Error("Hash() = 0")
			}
			if prev, dup := seen[got]; dup {
				t.Errorf("hash collides with %q", prev)
			}
			seen[got] = tt.name
		})
	}
}
