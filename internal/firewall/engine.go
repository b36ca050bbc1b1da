package firewall

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/firewall/internal/config"
	"github.com/vovakirdan/firewall/internal/core"
	"github.com/vovakirdan/firewall/internal/schedule"
)

// SoundSink plays audio cues. Play must not block.
type SoundSink interface {
	Play(s core.Sound)
}

type nopSink struct{}

func (nopSink) Play(core.Sound) {}

// Services are the host collaborators an Engine runs on.
// Zero fields get working defaults: a SimpleRNG on core.DefaultSeed, a Manual
// scheduler, no sound, and a discarding logger.
type Services struct {
	Random    RandomSource
	Scheduler schedule.Scheduler
	Sound     SoundSink
	Logger    *log.Logger
}

// Engine is one FIREWALL game: session, entities, and the state machine.
// All methods must be called from the goroutine that drives the scheduler.
type Engine struct {
	params   Params
	interval time.Duration

	rng    RandomSource
	sched  schedule.Scheduler
	sound  SoundSink
	logger *log.Logger

	machine    StateMachine
	session    Session
	store      *EntityStore
	spawner    SpawnPolicy
	collisions CollisionResolver
	difficulty DifficultyController
	flash      *Flash

	loop schedule.Handle
}

// New creates an engine on the title screen. cfg must have passed Validate.
func New(cfg config.Config, svc Services) *Engine {
	if svc.Random == nil {
		svc.Random = NewSimpleRNG(core.DefaultSeed)
	}
	if svc.Scheduler == nil {
		svc.Scheduler = schedule.NewManual()
	}
	if svc.Sound == nil {
		svc.Sound = nopSink{}
	}
	if svc.Logger == nil {
		svc.Logger = log.New(io.Discard)
	}

	p := ParamsFromConfig(cfg)
	return &Engine{
		params:     p,
		interval:   cfg.Timing.TickInterval(),
		rng:        svc.Random,
		sched:      svc.Scheduler,
		sound:      svc.Sound,
		logger:     svc.Logger,
		session:    newSession(p),
		store:      NewEntityStore(),
		spawner:    NewSpawnPolicy(p, svc.Random),
		collisions: NewCollisionResolver(p),
		difficulty: NewDifficultyController(p.StepEvery),
		flash:      NewFlash(svc.Scheduler, cfg.Timing.FlashDuration),
	}
}

// Begin starts a game from the title screen. It is ignored in other states.
func (e *Engine) Begin() {
	if !e.machine.Begin() {
		return
	}
	e.startPlaying("begin")
}

// Reset restarts the game from any state.
func (e *Engine) Reset() {
	e.machine.Reset()
	e.startPlaying("reset")
}

// startPlaying reinitializes the session and arms exactly one main loop.
func (e *Engine) startPlaying(reason string) {
	e.stopTimers()
	e.session = newSession(e.params)
	e.store.Clear()
	e.loop = e.sched.Every(e.interval, e.Tick)
	e.logger.Info("game started", "reason", reason, "interval", e.interval)
}

// stopTimers cancels the main loop and any pending flash.
func (e *Engine) stopTimers() {
	if e.loop.Valid() {
		e.sched.Cancel(e.loop)
		e.loop = 0
	}
	e.flash.Cancel()
}

// MoveLeft shifts the player one column left. Ignored at the edge or when
// not playing.
func (e *Engine) MoveLeft() {
	if e.machine.Current() != StatePlaying || e.session.PlayerX <= 0 {
		return
	}
	e.session.PlayerX--
}

// MoveRight shifts the player one column right. Ignored at the edge or when
// not playing.
func (e *Engine) MoveRight() {
	if e.machine.Current() != StatePlaying || e.session.PlayerX >= e.params.Width-1 {
		return
	}
	e.session.PlayerX++
}

// Fire launches a projectile from just above the player. It reports false if
// the shot was ignored because of the cooldown or the current state.
func (e *Engine) Fire() bool {
	if e.machine.Current() != StatePlaying || e.session.FireCooldown > 0 {
		return false
	}
	e.store.AddProjectile(Projectile{X: e.session.PlayerX, Y: e.params.PlayerRow() - 1})
	e.session.FireCooldown = e.params.FireCooldown
	e.sound.Play(core.SoundFire)
	return true
}

// Apply dispatches a semantic input action.
func (e *Engine) Apply(a core.Action) {
	switch a {
	case core.ActionLeft:
		e.MoveLeft()
	case core.ActionRight:
		e.MoveRight()
	case core.ActionFire:
		e.Fire()
	case core.ActionBegin:
		e.Begin()
	case core.ActionReset:
		e.Reset()
	}
}

// Tick advances the simulation by one step. Outside of play it does nothing,
// so a stray timer fire after cancellation cannot change the game.
func (e *Engine) Tick() {
	if e.machine.Current() != StatePlaying {
		return
	}
	s := &e.session

	s.TickCounter++
	if s.FireCooldown > 0 {
		s.FireCooldown--
	}

	if e.difficulty.Step(s) {
		e.logger.Debug("difficulty stepped", "tick", s.TickCounter, "difficulty", s.Difficulty)
	}

	// Contacts from the previous tick resolve before anything moves.
	res := e.collisions.Resolve(s, e.store)
	for range res.Hits {
		e.sound.Play(core.SoundHit)
	}
	for range res.Collected {
		e.sound.Play(core.SoundCollect)
	}
	if res.BossKills > 0 {
		e.logger.Info("boss destroyed", "tick", s.TickCounter, "score", s.Score)
	}

	e.advanceProjectiles()

	if e.difficulty.IsWave(*s) {
		if e.advanceThreats() {
			e.gameOver()
			return
		}
		if e.spawner.TrySpawn(s, e.store) {
			e.logger.Info("boss spawned", "tick", s.TickCounter, "score", s.Score)
		}
	}
	e.store.Compact()
}

// advanceProjectiles moves projectiles one row up, dropping those that leave
// the grid.
func (e *Engine) advanceProjectiles() {
	for i := range e.store.projectiles {
		p := &e.store.projectiles[i]
		if p.dead {
			continue
		}
		p.Y--
		if p.Y < 0 {
			p.dead = true
		}
	}
}

// advanceThreats moves threats one row down. A threat leaving the grid
// breaches the player edge and is removed. It reports true as soon as a
// breach exhausts the player's health; later threats are left where they are.
func (e *Engine) advanceThreats() bool {
	s := &e.session
	for i := range e.store.threats {
		t := &e.store.threats[i]
		if t.dead {
			continue
		}
		t.Y++
		if t.Y < e.params.Height {
			continue
		}

		t.dead = true
		if t.IsBoss {
			s.BossActive = false
		}
		if e.collisions.EdgeReached(s) {
			e.flash.Trigger()
			e.logger.Debug("player hit", "tick", s.TickCounter, "health", s.Health)
		} else {
			e.logger.Debug("shield absorbed breach", "tick", s.TickCounter)
		}
		if s.Health <= 0 {
			e.store.Compact()
			return true
		}
	}
	return false
}

// gameOver freezes the session and stops every timer.
func (e *Engine) gameOver() {
	if !e.machine.Fail() {
		return
	}
	e.stopTimers()
	e.sound.Play(core.SoundGameOver)
	e.logger.Info("game over", "tick", e.session.TickCounter, "score", e.session.Score)
}

// State returns the current game phase.
func (e *Engine) State() State {
	return e.machine.Current()
}

// Session returns a copy of the session scalars.
func (e *Engine) Session() Session {
	return e.session
}

// Params returns the rules the engine was built with.
func (e *Engine) Params() Params {
	return e.params
}

// Threats returns the live threats.
func (e *Engine) Threats() []Threat {
	return e.store.Threats()
}

// Projectiles returns the live projectiles.
func (e *Engine) Projectiles() []Projectile {
	return e.store.Projectiles()
}

// PowerUps returns the live power-ups.
func (e *Engine) PowerUps() []PowerUp {
	return e.store.PowerUps()
}

// Flashing reports whether the damage flash is showing.
func (e *Engine) Flashing() bool {
	return e.flash.Pending()
}

// Flashes returns how many damage flashes have started since the engine was
// created.
func (e *Engine) Flashes() int {
	return e.flash.Count()
}

// LoopHandle returns the main loop task, or the zero Handle when stopped.
func (e *Engine) LoopHandle() schedule.Handle {
	return e.loop
}

// Status messages outside of play.
const (
	TitleText    = "FIREWALL"
	TitlePrompt  = "Protect the system. Press SPACE or click to begin."
	GameOverText = "SYSTEM FAILURE - Press 1 to restart"
)

// StatusText returns the status line for the current state.
func (e *Engine) StatusText() string {
	switch e.machine.Current() {
	case StateTitle:
		return TitlePrompt
	case StateGameOver:
		return GameOverText
	}
	text := fmt.Sprintf("Health: %d  Score: %d", e.session.Health, e.session.Score)
	if e.session.ShieldActive {
		text += "  SHIELD"
	}
	return text
}
