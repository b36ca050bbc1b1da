// Package schedule defines the periodic-timer primitive the engine runs on.
//
// The engine never sleeps or spawns goroutines. A host supplies a Scheduler
// whose callbacks are executed on the host's single event loop: Bubble Tea's
// update loop in the terminal UI, or the caller of Manual.Advance in tests and
// headless runs.
package schedule

import "time"

// Handle identifies a scheduled task. The zero Handle is never issued and
// stands for "no task".
type Handle uint64

// Valid reports whether h refers to a task that was issued.
func (h Handle) Valid() bool {
	return h != 0
}

// Scheduler runs callbacks periodically.
type Scheduler interface {
	// Every schedules fn to run once per interval until cancelled.
	Every(interval time.Duration, fn func()) Handle

	// Cancel stops a task. Cancelling the zero Handle or an already
	// cancelled task is a no-op. A cancelled task never runs again, even if
	// its next firing was already in flight.
	Cancel(h Handle)
}
