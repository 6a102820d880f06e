package frameloop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 16 * time.Millisecond

func TestLoop_IdleUntilFirstCallback(t *testing.T) {
	s := NewManualScheduler()
	l := New(s)

	assert.Zero(t, s.Requests())
	assert.False(t, l.Pending())

	l.OnFrame(func(time.Duration) {})
	assert.Equal(t, 1, s.Pending())
	assert.True(t, l.Pending())
}

func TestLoop_SingleHandleForManyCallbacks(t *testing.T) {
	s := NewManualScheduler()
	l := New(s)

	var order []string
	l.OnFrame(func(time.Duration) { order = append(order, "a") })
	l.OnFrame(func(time.Duration) { order = append(order, "b") })
	l.OnFrame(func(time.Duration) { order = append(order, "c") })

	assert.Equal(t, 1, s.Pending())

	require.Equal(t, 1, s.Tick(frame))
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 1, s.Pending(), "next frame requested once")

	s.Tick(frame)
	assert.Len(t, order, 6)
	assert.Equal(t, 3, s.Requests())
}

func TestLoop_ReportsElapsedTime(t *testing.T) {
	s := NewManualScheduler()
	l := New(s)

	var got []time.Duration
	l.OnFrame(func(dt time.Duration) { got = append(got, dt) })

	s.Tick(frame)
	s.Tick(frame)
	s.Tick(2 * frame)

	assert.Equal(t, []time.Duration{0, frame, 2 * frame}, got)
}

func TestLoop_CancelLastCallbackCancelsFrame(t *testing.T) {
	s := NewManualScheduler()
	l := New(s)

	cancelA := l.OnFrame(func(time.Duration) {})
	cancelB := l.OnFrame(func(time.Duration) {})

	cancelA()
	assert.True(t, l.Pending())
	assert.Equal(t, 1, l.Len())

	cancelB()
	assert.False(t, l.Pending())
	assert.Zero(t, s.Pending())
	assert.Zero(t, l.Len())

	assert.NotPanics(t, cancelB)
}

func TestLoop_CancelDuringTick(t *testing.T) {
	s := NewManualScheduler()
	l := New(s)

	ran := map[string]int{}
	var cancelB func()
	l.OnFrame(func(time.Duration) {
		ran["a"]++
		cancelB()
	})
	cancelB = l.OnFrame(func(time.Duration) { ran["b"]++ })

	s.Tick(frame)
	s.Tick(frame)

	assert.Equal(t, 2, ran["a"])
	assert.Zero(t, ran["b"])
}

func TestLoop_RegisterDuringTickWaitsForNextFrame(t *testing.T) {
	s := NewManualScheduler()
	l := New(s)

	late := 0
	added := false
	l.OnFrame(func(time.Duration) {
		if !added {
			added = true
			l.OnFrame(func(time.Duration) { late++ })
		}
	})

	s.Tick(frame)
	assert.Zero(t, late)
	assert.Equal(t, 1, s.Pending())

	s.Tick(frame)
	assert.Equal(t, 1, late)
}

func TestLoop_Stop(t *testing.T) {
	s := NewManualScheduler()
	l := New(s)

	calls := 0
	l.OnFrame(func(time.Duration) { calls++ })
	s.Tick(frame)

	l.Stop()
	s.Tick(frame)

	assert.Equal(t, 1, calls)
	assert.Zero(t, s.Pending())
	assert.Zero(t, l.Len())

	// the loop can be reused
	l.OnFrame(func(time.Duration) { calls++ })
	s.Tick(frame)
	assert.Equal(t, 2, calls)
}

func TestLoop_StopFromCallback(t *testing.T) {
	s := NewManualScheduler()
	l := New(s)

	l.OnFrame(func(time.Duration) { l.Stop() })
	s.Tick(frame)

	assert.Zero(t, s.Pending())
	assert.False(t, l.Pending())
}

func TestLoop_RestartResetsElapsed(t *testing.T) {
	s := NewManualScheduler()
	l := New(s)

	var got []time.Duration
	cancel := l.OnFrame(func(dt time.Duration) { got = append(got, dt) })
	s.Tick(frame)
	s.Tick(frame)
	cancel()

	s.Tick(time.Second)
	l.OnFrame(func(dt time.Duration) { got = append(got, dt) })
	s.Tick(frame)

	assert.Equal(t, []time.Duration{0, frame, 0}, got)
}

func TestManualScheduler_CancelFrame(t *testing.T) {
	s := NewManualScheduler()

	fired := false
	h := s.RequestFrame(func(time.Duration) { fired = true })
	s.CancelFrame(h)

	assert.Zero(t, s.Tick(frame))
	assert.False(t, fired)
	assert.Equal(t, frame, s.Now())
}
