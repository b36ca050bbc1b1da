// Package tui hosts the firewall engine in Bubble Tea, locally or over SSH.
// It maps keys to engine commands, runs the engine's timers on the Bubble Tea
// event loop, and turns the engine's screen buffer into styled text.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/firewall/internal/schedule"
)

// FireMsg is delivered when a scheduled task's interval elapses.
type FireMsg struct {
	Handle schedule.Handle
	At     time.Time
}

// TeaScheduler implements schedule.Scheduler on top of tea.Tick.
//
// Every task is a chain of one-shot tea.Tick commands tagged with the task's
// handle. The model routes each FireMsg back through Fire, which runs the task
// and re-arms it. A cancelled task's in-flight tick still arrives but is
// dropped, so nothing runs after Cancel.
//
// Not safe for concurrent use; it belongs to one Bubble Tea program.
type TeaScheduler struct {
	next    schedule.Handle
	tasks   map[schedule.Handle]time.Duration
	fns     map[schedule.Handle]func()
	pending []tea.Cmd
}

// NewTeaScheduler creates an empty scheduler.
func NewTeaScheduler() *TeaScheduler {
	return &TeaScheduler{
		tasks: make(map[schedule.Handle]time.Duration),
		fns:   make(map[schedule.Handle]func()),
	}
}

// Every implements schedule.Scheduler. The first tick command is queued and
// handed to Bubble Tea by the next Drain.
func (s *TeaScheduler) Every(interval time.Duration, fn func()) schedule.Handle {
	s.next++
	h := s.next
	s.tasks[h] = interval
	s.fns[h] = fn
	s.pending = append(s.pending, tickCmd(h, interval))
	return h
}

// Cancel implements schedule.Scheduler.
func (s *TeaScheduler) Cancel(h schedule.Handle) {
	delete(s.tasks, h)
	delete(s.fns, h)
}

// Live returns the number of scheduled tasks.
func (s *TeaScheduler) Live() int {
	return len(s.tasks)
}

// Fire runs the task behind msg and re-arms it. Fires for cancelled tasks are
// ignored. It returns the commands queued since the last Drain.
func (s *TeaScheduler) Fire(msg FireMsg) tea.Cmd {
	fn, ok := s.fns[msg.Handle]
	if ok {
		fn()
		// fn may have cancelled its own task.
		if interval, still := s.tasks[msg.Handle]; still {
			s.pending = append(s.pending, tickCmd(msg.Handle, interval))
		}
	}
	return s.Drain()
}

// Drain returns every queued tick command as one batch.
func (s *TeaScheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// tickCmd returns a command that reports h after interval.
func tickCmd(h schedule.Handle, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FireMsg{Handle: h, At: t}
	})
}
