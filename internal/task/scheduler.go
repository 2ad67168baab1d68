package task

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind names what a task continues into, e.g. "login".
type Kind string

// Fired is delivered when a task's delay elapses.
type Fired struct {
	ID   uint64
	Kind Kind
	At   time.Time
}

type pending struct {
	id     uint64
	kind   Kind
	delay  time.Duration
	cancel chan struct{}
	once   sync.Once
}

func (p *pending) stop() {
	p.once.Do(func() { close(p.cancel) })
}

// Scheduler tracks live tasks. Its methods must only be called from the event
// loop; the commands it returns are safe to run on any goroutine.
type Scheduler struct {
	clock Clock
	next  uint64
	live  map[uint64]*pending
}

func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock, live: map[uint64]*pending{}}
}

// Clock returns the scheduler's time source.
func (s *Scheduler) Clock() Clock { return s.clock }

// Start registers a task and returns its id with the command that waits for it.
// A cancelled task's command returns nil.
func (s *Scheduler) Start(kind Kind, delay time.Duration) (uint64, tea.Cmd) {
	s.next++
	p := &pending{id: s.next, kind: kind, delay: delay, cancel: make(chan struct{})}
	s.live[p.id] = p
	clock := s.clock
	return p.id, func() tea.Msg {
		select {
		case <-p.cancel:
			return nil
		default:
		}
		select {
		case at := <-clock.After(p.delay):
			return Fired{ID: p.id, Kind: p.kind, At: at}
		case <-p.cancel:
			return nil
		}
	}
}

// Cancel stops a live task. It reports whether the task was still live.
func (s *Scheduler) Cancel(id uint64) bool {
	p, ok := s.live[id]
	if !ok {
		return false
	}
	delete(s.live, id)
	p.stop()
	return true
}

// CancelKind stops every live task of kind and returns how many were stopped.
func (s *Scheduler) CancelKind(kind Kind) int {
	n := 0
	for id, p := range s.live {
		if p.kind != kind {
			continue
		}
		delete(s.live, id)
		p.stop()
		n++
	}
	return n
}

// Pending reports whether a task of kind is live.
func (s *Scheduler) Pending(kind Kind) bool {
	for _, p := range s.live {
		if p.kind == kind {
			return true
		}
	}
	return false
}

// Settle consumes f. It reports false when f belongs to a cancelled, unknown or
// already settled task, in which case the continuation must not run.
func (s *Scheduler) Settle(f Fired) bool {
	p, ok := s.live[f.ID]
	if !ok || p.kind != f.Kind {
		return false
	}
	delete(s.live, f.ID)
	return true
}
