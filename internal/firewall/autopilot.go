package firewall

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/firewall/internal/config"
	"github.com/vovakirdan/firewall/internal/core"
	"github.com/vovakirdan/firewall/internal/schedule"
)

// Autopilot is a simple bot: it chases the lowest threat and fires when lined
// up under it.
type Autopilot struct{}

// Decide picks the action for the next tick.
func (Autopilot) Decide(e *Engine) core.Action {
	if e.State() != StatePlaying {
		return core.ActionNone
	}
	s := e.Session()

	target, lowest := -1, -1
	for _, t := range e.Threats() {
		if t.Y > lowest || (t.Y == lowest && core.Abs(t.X-s.PlayerX) < core.Abs(target-s.PlayerX)) {
			target, lowest = t.X, t.Y
		}
	}

	switch {
	case target < 0:
		return core.ActionNone
	case target < s.PlayerX:
		return core.ActionLeft
	case target > s.PlayerX:
		return core.ActionRight
	case s.FireCooldown == 0:
		return core.ActionFire
	}
	return core.ActionNone
}

// RunResult summarizes one headless game.
type RunResult struct {
	Seed       int64
	Ticks      int
	Score      int
	Health     int
	Difficulty int
	Flashes    int
	GameOver   bool
	Hash       uint64
}

// RunHeadless plays one game under the autopilot on a virtual clock until the
// game ends or maxTicks ticks have run.
func RunHeadless(cfg config.Config, seed int64, maxTicks int, logger *log.Logger) RunResult {
	sched := schedule.NewManual()
	e := New(cfg, Services{
		Random:    NewSimpleRNG(seed),
		Scheduler: sched,
		Logger:    logger,
	})
	e.Begin()

	var pilot Autopilot
	interval := cfg.Timing.TickInterval()
	for e.State() == StatePlaying && e.Session().TickCounter < maxTicks {
		e.Apply(pilot.Decide(e))
		sched.Advance(interval)
	}

	s := e.Session()
	return RunResult{
		Seed:       seed,
		Ticks:      s.TickCounter,
		Score:      s.Score,
		Health:     s.Health,
		Difficulty: s.Difficulty,
		Flashes:    e.Flashes(),
		GameOver:   e.State() == StateGameOver,
		Hash:       e.Snapshot().Hash(),
	}
}
