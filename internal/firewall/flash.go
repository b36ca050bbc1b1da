package firewall

import (
	"time"

	"github.com/vovakirdan/firewall/internal/schedule"
)

// FlashState is the state of the damage flash.
type FlashState int

const (
	FlashIdle    FlashState = iota // No flash showing
	FlashPending                   // Flash showing, expiry timer armed
)

// String returns the state name.
func (f FlashState) String() string {
	if f == FlashPending {
		return "pending"
	}
	return "idle"
}

// Flash is the damage flash effect. At most one flash is pending at a time;
// triggers while pending are ignored. The expiry task cancels itself on its
// first run, making it a one-shot on top of a repeating scheduler.
type Flash struct {
	sched    schedule.Scheduler
	duration time.Duration
	state    FlashState
	handle   schedule.Handle
	count    int
}

// NewFlash creates an idle flash that stays up for duration once triggered.
func NewFlash(sched schedule.Scheduler, duration time.Duration) *Flash {
	return &Flash{sched: sched, duration: duration}
}

// Trigger starts a flash. It reports false if one is already pending.
func (f *Flash) Trigger() bool {
	if f.state == FlashPending {
		return false
	}
	f.state = FlashPending
	f.count++

	var h schedule.Handle
	h = f.sched.Every(f.duration, func() { f.expire(h) })
	f.handle = h
	return true
}

// expire ends the flash armed under h. Fires for older handles are ignored.
func (f *Flash) expire(h schedule.Handle) {
	if f.handle != h {
		return
	}
	f.Cancel()
}

// Cancel stops any pending flash and returns to idle.
func (f *Flash) Cancel() {
	if f.handle.Valid() {
		f.sched.Cancel(f.handle)
	}
	f.handle = 0
	f.state = FlashIdle
}

// State returns the current flash state.
func (f *Flash) State() FlashState {
	return f.state
}

// Pending reports whether the flash is showing.
func (f *Flash) Pending() bool {
	return f.state == FlashPending
}

// Count returns how many flashes have been started.
func (f *Flash) Count() int {
	return f.count
}
