package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults drifted from DefaultConfig():\n got %+v\nwant %+v", cfg, DefaultConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("spawn:\n  boss_score: 3\ntiming:\n  flash_duration: 250ms\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Spawn.BossScore != 3 {
		t.Errorf("BossScore = %d, expected 3", cfg.Spawn.BossScore)
	}
	if cfg.Timing.FlashDuration != 250*time.Millisecond {
		t.Errorf("FlashDuration = %s, expected 250ms", cfg.Timing.FlashDuration)
	}
	// Untouched fields keep their defaults
	if cfg.Grid.Width != 15 || cfg.Spawn.ThreatChance != 30 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("empty document should yield defaults, got %+v", cfg)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown field", "grid:\n  depth: 3\n", "cannot parse"},
		{"tiny grid", "grid:\n  width: 2\n", "grid must be at least"},
		{"chance over 100", "spawn:\n  threat_chance: 101\n", "threat_chance"},
		{"negative powerup chance", "spawn:\n  powerup_chance: -1\n", "powerup_chance"},
		{"zero difficulty", "difficulty:\n  initial: 0\n", "difficulty.initial"},
		{"zero step", "difficulty:\n  step_every: 0\n", "step_every"},
		{"zero boss hp", "spawn:\n  boss_hp: 0\n", "boss_hp"},
		{"zero health", "player:\n  max_health: 0\n", "max_health"},
		{"zero tick rate", "timing:\n  tick_rate: 0\n", "tick_rate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fw.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 9\n  height: 11\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %s, expected %s", src, SourceCustom)
	}
	if cfg.Grid.Width != 9 || cfg.Grid.Height != 11 {
		t.Errorf("grid = %dx%d, expected 9x11", cfg.Grid.Width, cfg.Grid.Height)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestEncodeParsesBack(t *testing.T) {
	want := DefaultConfig()
	want.Spawn.BossHP = 9
	want.Timing.FlashDuration = 1500 * time.Millisecond

	data, err := Encode(want)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	if !strings.Contains(string(data), "flash_duration: 1.5s") {
		t.Errorf("durations should encode as strings, got:\n%s", data)
	}

	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Encode()) failed: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestTickInterval(t *testing.T) {
	if got := (TimingConfig{TickRate: 12}).TickInterval(); got != time.Second/12 {
		t.Errorf("TickInterval() = %s, expected %s", got, time.Second/12)
	}
	if got := (TimingConfig{}).TickInterval(); got != time.Second {
		t.Errorf("TickInterval() with zero rate = %s, expected 1s", got)
	}
}
