package firewall

import (
	"testing"

	"github.com/vovakirdan/firewall/internal/config"
	"github.com/vovakirdan/firewall/internal/core"
	"github.com/vovakirdan/firewall/internal/schedule"
)

// scriptedRNG replays fixed values, then returns n-1 forever. With the
// default odds n-1 never passes a spawn roll, so an exhausted script means
// "nothing spawns".
type scriptedRNG struct {
	vals []int
}

func (r *scriptedRNG) Intn(n int) int {
	if len(r.vals) == 0 {
		return n - 1
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v % n
}

// recordingScheduler counts cancellations per handle.
type recordingScheduler struct {
	*schedule.Manual
	cancels map[schedule.Handle]int
}

func newRecordingScheduler() *recordingScheduler {
	return &recordingScheduler{
		Manual:  schedule.NewManual(),
		cancels: make(map[schedule.Handle]int),
	}
}

func (r *recordingScheduler) Cancel(h schedule.Handle) {
	r.cancels[h]++
	r.Manual.Cancel(h)
}

// soundLog records every cue played.
type soundLog struct {
	played []core.Sound
}

func (s *soundLog) Play(c core.Sound) {
	s.played = append(s.played, c)
}

func (s *soundLog) count(c core.Sound) int {
	n := 0
	for _, p := range s.played {
		if p == c {
			n++
		}
	}
	return n
}

type testRig struct {
	engine *Engine
	sched  *recordingScheduler
	sound  *soundLog
	cfg    config.Config
}

// newTestRig builds a playing engine with an empty board. mutate may adjust
// the default config first.
func newTestRig(t *testing.T, rng RandomSource, mutate func(*config.Config)) *testRig {
	t.Helper()

	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	if rng == nil {
		rng = &scriptedRNG{}
	}

	rig := &testRig{
		sched: newRecordingScheduler(),
		sound: &soundLog{},
		cfg:   cfg,
	}
	rig.engine = New(cfg, Services{
		Random:    rng,
		Scheduler: rig.sched,
		Sound:     rig.sound,
	})
	rig.engine.Begin()
	return rig
}

// everyTick makes threats move on every tick.
func everyTick(cfg *config.Config) {
	cfg.Difficulty.Initial = 1
}

// checkInvariants fails the test if any session or entity invariant is broken.
func checkInvariants(t *testing.T, e *Engine) {
	t.Helper()
	s := e.Session()
	p := e.Params()

	if s.Health < 0 || s.Health > p.MaxHealth {
		t.Fatalf("health %d out of [0, %d]", s.Health, p.MaxHealth)
	}
	if s.Difficulty < 1 {
		t.Fatalf("difficulty %d below 1", s.Difficulty)
	}
	if s.PlayerX < 0 || s.PlayerX >= p.Width {
		t.Fatalf("player x %d out of grid", s.PlayerX)
	}

	bosses := e.store.BossCount()
	if bosses > 1 {
		t.Fatalf("%d bosses alive", bosses)
	}
	if s.BossActive != (bosses == 1) {
		t.Fatalf("BossActive=%v with %d bosses alive", s.BossActive, bosses)
	}

	inGrid := func(x, y int) bool { return x >= 0 && x < p.Width && y >= 0 && y < p.Height }
	for _, th := range e.Threats() {
		if !inGrid(th.X, th.Y) {
			t.Fatalf("threat out of grid: %+v", th)
		}
	}
	for _, pr := range e.Projectiles() {
		if !inGrid(pr.X, pr.Y) {
			t.Fatalf("projectile out of grid: %+v", pr)
		}
	}
	for _, pu := range e.PowerUps() {
		if !inGrid(pu.X, pu.Y) {
			t.Fatalf("power-up out of grid: %+v", pu)
		}
	}
}
