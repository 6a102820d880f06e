package frameloop

import (
	"sync"
	"time"
)

// ManualScheduler is a Scheduler whose frames fire only when Tick is
// called. It backs tests and offline rendering.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	next    int
	pending map[int]func(time.Duration)
	order   []int

	requests int
}

// NewManualScheduler returns a scheduler with its clock at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{pending: make(map[int]func(time.Duration))}
}

func (s *ManualScheduler) RequestFrame(fn func(now time.Duration)) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	s.pending[s.next] = fn
	s.order = append(s.order, s.next)
	s.requests++
	return s.next
}

func (s *ManualScheduler) CancelFrame(handle int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, handle)
}

// Tick advances the clock by dt and runs every callback requested before
// the call. Callbacks requested while ticking wait for the next Tick. It
// returns how many callbacks ran.
func (s *ManualScheduler) Tick(dt time.Duration) int {
	s.mu.Lock()
	s.now += dt
	now := s.now
	var due []func(time.Duration)
	for _, h := range s.order {
		if fn, ok := s.pending[h]; ok {
			due = append(due, fn)
			delete(s.pending, h)
		}
	}
	s.order = s.order[:0]
	s.mu.Unlock()

	for _, fn := range due {
		fn(now)
	}
	return len(due)
}

// Pending returns the number of outstanding frame requests.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Requests returns the total number of RequestFrame calls.
func (s *ManualScheduler) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// Now returns the scheduler clock.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}
