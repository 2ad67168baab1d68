package task

import (
	"testing"
	"time"
)

func TestStartDeliversFiredAfterDelay(t *testing.T) {
	clock := NewFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	s := NewScheduler(clock)

	id, cmd := s.Start("login", 900*time.Millisecond)
	if !s.Pending("login") {
		t.Fatalf("expected login pending right after start")
	}
	msg := cmd()
	fired, ok := msg.(Fired)
	if !ok {
		t.Fatalf("expected Fired, got %T", msg)
	}
	if fired.ID != id || fired.Kind != "login" {
		t.Fatalf("unexpected firing %+v", fired)
	}
	if want := time.Date(2026, 1, 1, 0, 0, 0, 900_000_000, time.UTC); !fired.At.Equal(want) {
		t.Fatalf("fired at %v, want %v", fired.At, want)
	}
	if got := clock.Delays(); len(got) != 1 || got[0] != 900*time.Millisecond {
		t.Fatalf("delays = %v", got)
	}
	if !s.Settle(fired) {
		t.Fatalf("live task should settle")
	}
	if s.Pending("login") {
		t.Fatalf("settled task must not stay pending")
	}
	if s.Settle(fired) {
		t.Fatalf("a firing settles once")
	}
}

func TestCancelledTaskReturnsNilAndIsStale(t *testing.T) {
	clock := NewFakeClock(time.Time{})
	s := NewScheduler(clock)

	id, cmd := s.Start("search", 1800*time.Millisecond)
	if !s.Cancel(id) {
		t.Fatalf("expected cancel of live task")
	}
	if s.Cancel(id) {
		t.Fatalf("second cancel should report false")
	}
	if msg := cmd(); msg != nil {
		t.Fatalf("cancelled command should yield nil, got %v", msg)
	}
	if len(clock.Delays()) != 0 {
		t.Fatalf("cancelled command must not wait on the clock")
	}
	if s.Settle(Fired{ID: id, Kind: "search"}) {
		t.Fatalf("stale firing must not settle")
	}
}

func TestFiringRacingCancelIsDiscarded(t *testing.T) {
	s := NewScheduler(NewFakeClock(time.Time{}))

	id, cmd := s.Start("search", time.Second)
	msg := cmd()
	s.Cancel(id)
	if fired, ok := msg.(Fired); !ok || s.Settle(fired) {
		t.Fatalf("firing delivered after cancel must be stale")
	}
}

func TestCancelKindOnlyTouchesThatKind(t *testing.T) {
	s := NewScheduler(NewFakeClock(time.Time{}))
	s.Start("login", time.Second)
	s.Start("login", time.Second)
	_, searchCmd := s.Start("search", time.Second)

	if n := s.CancelKind("login"); n != 2 {
		t.Fatalf("cancelled %d login tasks, want 2", n)
	}
	if s.Pending("login") {
		t.Fatalf("login should be gone")
	}
	if !s.Pending("search") {
		t.Fatalf("search should survive")
	}
	fired, ok := searchCmd().(Fired)
	if !ok || !s.Settle(fired) {
		t.Fatalf("search should still fire and settle")
	}
}

func TestSettleRejectsKindMismatch(t *testing.T) {
	s := NewScheduler(NewFakeClock(time.Time{}))
	id, _ := s.Start("login", time.Second)
	if s.Settle(Fired{ID: id, Kind: "search"}) {
		t.Fatalf("kind mismatch must not settle")
	}
	if !s.Pending("login") {
		t.Fatalf("mismatched settle must leave the task live")
	}
}

func TestNilClockDefaultsToSystem(t *testing.T) {
	s := NewScheduler(nil)
	if _, ok := s.Clock().(SystemClock); !ok {
		t.Fatalf("expected SystemClock, got %T", s.Clock())
	}
	_, cmd := s.Start("tick", time.Millisecond)
	if _, ok := cmd().(Fired); !ok {
		t.Fatalf("system clock task should fire")
	}
}
