package firewall

import (
	"testing"
	"time"

	"github.com/vovakirdan/firewall/internal/schedule"
)

func TestFlashLifecycle(t *testing.T) {
	sched := schedule.NewManual()
	f := NewFlash(sched, 80*time.Millisecond)

	if f.State() != FlashIdle {
		t.Fatalf("new flash state = %s, want idle", f.State())
	}
	if !f.Trigger() {
		t.Fatal("Trigger from idle rejected")
	}
	if f.Trigger() {
		t.Error("Trigger accepted while pending")
	}
	if sched.Live() != 1 {
		t.Errorf("pending flash should own one task, have %d", sched.Live())
	}

	sched.Advance(79 * time.Millisecond)
	if !f.Pending() {
		t.Fatal("flash expired early")
	}
	sched.Advance(time.Millisecond)
	if f.Pending() {
		t.Fatal("flash did not expire")
	}
	if sched.Live() != 0 {
		t.Errorf("expired flash left %d tasks", sched.Live())
	}
	if f.Count() != 1 {
		t.Errorf("count = %d, want 1", f.Count())
	}
}

func TestFlashCancel(t *testing.T) {
	sched := schedule.NewManual()
	f := NewFlash(sched, 80*time.Millisecond)

	f.Cancel() // idle cancel is a no-op
	f.Trigger()
	f.Cancel()
	f.Cancel()

	if f.Pending() || sched.Live() != 0 {
		t.Errorf("after Cancel: pending=%v live=%d", f.Pending(), sched.Live())
	}
	if !f.Trigger() {
		t.Error("Trigger after Cancel rejected")
	}
}
