package firewall

import (
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is a self-contained copy of the observable game state, taken after
// a tick for the presentation layer and for determinism checks.
type Snapshot struct {
	State       string       `msgpack:"state"`
	Session     Session      `msgpack:"session"`
	Threats     []Threat     `msgpack:"threats"`
	Projectiles []Projectile `msgpack:"projectiles"`
	PowerUps    []PowerUp    `msgpack:"powerups"`
	Flashing    bool         `msgpack:"flashing"`
	RNGState    uint64       `msgpack:"rng"`
}

// stateful is implemented by random sources whose state can be captured.
type stateful interface {
	State() uint64
}

// Snapshot returns the current game state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		State:       e.machine.Current().String(),
		Session:     e.session,
		Threats:     e.store.Threats(),
		Projectiles: e.store.Projectiles(),
		PowerUps:    e.store.PowerUps(),
		Flashing:    e.flash.Pending(),
	}
	if r, ok := e.rng.(stateful); ok {
		snap.RNGState = r.State()
	}
	return snap
}

// Encode returns the canonical msgpack encoding of the snapshot.
func (snap Snapshot) Encode() ([]byte, error) {
	b, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("firewall: encode snapshot: %w", err)
	}
	return b, nil
}

// DecodeSnapshot parses a snapshot produced by Encode. Nothing in the game
// reads snapshots back; together with Encode it defines the wire format that
// external tools and replays may rely on, and the round-trip test pins it.
func DecodeSnapshot(b []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(b, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("firewall: decode snapshot: %w", err)
	}
	return snap, nil
}

// Hash returns an FNV-1a hash of the encoded snapshot for determinism testing.
// Snapshot holds only plain values, so an encoding failure is a programming
// error and panics.
func (snap Snapshot) Hash() uint64 {
	b, err := snap.Encode()
	if err != nil {
		panic(err)
	}
	h := fnv.New64a()
	h.Write(b) //nolint:errcheck // hash writes never fail
	return h.Sum64()
}
