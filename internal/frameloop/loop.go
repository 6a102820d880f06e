// Package frameloop drives every per-frame animation of a page from a single
// frame source, so the molecule viewer and the decorative layers advance in
// lock step and share one requestAnimationFrame handle.
package frameloop

import (
	"sync"
	"time"
)

// Callback receives the time elapsed since the previous tick of the loop.
// The first tick after the loop (re)starts reports zero.
type Callback func(dt time.Duration)

// Scheduler is a one-shot frame source. RequestFrame arranges for fn to be
// called once with the current frame timestamp and returns a handle that
// CancelFrame accepts.
type Scheduler interface {
	RequestFrame(fn func(now time.Duration)) int
	CancelFrame(handle int)
}

type entry struct {
	id      int
	fn      Callback
	removed bool
}

// Loop multiplexes any number of callbacks onto one scheduler handle.
type Loop struct {
	mu    sync.Mutex
	sched Scheduler

	nextID  int
	entries []*entry

	handle  int
	pending bool
	ticking bool
	stopped bool

	last    time.Duration
	hasLast bool
}

// New returns an idle loop. Nothing is requested from s until the first
// callback is registered.
func New(s Scheduler) *Loop {
	return &Loop{sched: s}
}

// OnFrame registers fn to run on every tick, after the callbacks already
// registered. The returned cancel func is idempotent.
func (l *Loop) OnFrame(fn Callback) (cancel func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	e := &entry{id: l.nextID, fn: fn}
	l.entries = append(l.entries, e)
	l.stopped = false
	l.scheduleLocked()

	return func() { l.remove(e) }
}

// Len returns the number of registered callbacks.
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Pending reports whether a frame is currently requested.
func (l *Loop) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending
}

// Stop removes every callback and cancels the pending frame.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range l.entries {
		e.removed = true
	}
	l.entries = nil
	l.stopped = true
	l.cancelLocked()
}

func (l *Loop) remove(e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e.removed {
		return
	}
	e.removed = true
	for i, cur := range l.entries {
		if cur == e {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			break
		}
	}
	if len(l.entries) == 0 {
		l.cancelLocked()
	}
}

func (l *Loop) scheduleLocked() {
	if l.pending || l.ticking || l.stopped || len(l.entries) == 0 {
		return
	}
	l.pending = true
	l.handle = l.sched.RequestFrame(l.tick)
}

func (l *Loop) cancelLocked() {
	if l.pending {
		l.sched.CancelFrame(l.handle)
		l.pending = false
	}
	l.hasLast = false
}

func (l *Loop) tick(now time.Duration) {
	l.mu.Lock()
	l.pending = false
	if len(l.entries) == 0 {
		l.mu.Unlock()
		return
	}
	var dt time.Duration
	if l.hasLast && now > l.last {
		dt = now - l.last
	}
	l.last, l.hasLast = now, true
	l.ticking = true
	batch := make([]*entry, len(l.entries))
	copy(batch, l.entries)
	l.mu.Unlock()

	for _, e := range batch {
		// Callbacks may cancel each other mid-tick.
		l.mu.Lock()
		removed := e.removed
		l.mu.Unlock()
		if !removed {
			e.fn(dt)
		}
	}

	l.mu.Lock()
	l.ticking = false
	l.scheduleLocked()
	l.mu.Unlock()
}
