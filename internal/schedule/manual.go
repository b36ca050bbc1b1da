package schedule

import (
	"sort"
	"time"
)

// Manual is a Scheduler driven by a virtual clock.
// Nothing happens until Advance is called; due tasks then run on the caller's
// goroutine in deadline order, ties broken by issue order.
type Manual struct {
	now   time.Duration
	next  Handle
	tasks map[Handle]*manualTask
}

type manualTask struct {
	handle   Handle
	interval time.Duration
	due      time.Duration
	fn       func()
}

// NewManual creates a Manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{tasks: make(map[Handle]*manualTask)}
}

// Every implements Scheduler.
func (m *Manual) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	m.next++
	m.tasks[m.next] = &manualTask{
		handle:   m.next,
		interval: interval,
		due:      m.now + interval,
		fn:       fn,
	}
	return m.next
}

// Cancel implements Scheduler.
func (m *Manual) Cancel(h Handle) {
	delete(m.tasks, h)
}

// Now returns the current virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Live returns the number of scheduled tasks.
func (m *Manual) Live() int {
	return len(m.tasks)
}

// Active reports whether h is still scheduled.
func (m *Manual) Active(h Handle) bool {
	_, ok := m.tasks[h]
	return ok
}

// Advance moves the clock forward by d, running every task that falls due.
// Callbacks may schedule or cancel tasks; a task cancelled by an earlier
// callback in the same Advance does not run.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		t := m.earliest(target)
		if t == nil {
			break
		}
		m.now = t.due
		t.due += t.interval
		t.fn()
	}
	m.now = target
}

// earliest returns the live task with the smallest deadline not after limit.
func (m *Manual) earliest(limit time.Duration) *manualTask {
	due := make([]*manualTask, 0, len(m.tasks))
	for _, t := range m.tasks {
		if t.due <= limit {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].handle < due[j].handle
	})
	return due[0]
}
