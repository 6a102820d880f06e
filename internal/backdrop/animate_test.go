package backdrop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Thegreatvegan/Qura/internal/frameloop"
)

func TestPlay(t *testing.T) {
	sched := frameloop.NewManualScheduler()
	loop := frameloop.New(sched)
	f := NewCircuit()
	c := &countingCanvas{w: 172, h: 330}

	stop := Play(loop, f, c)

	sched.Tick(16 * time.Millisecond)
	assert.Equal(t, time.Duration(0), f.Now(), "first tick has no elapsed time")
	assert.Equal(t, 1, c.clears)

	sched.Tick(16 * time.Millisecond)
	sched.Tick(16 * time.Millisecond)
	assert.Equal(t, 32*time.Millisecond, f.Now())
	assert.Equal(t, 3, c.clears)

	stop()
	assert.Equal(t, 0, sched.Tick(16*time.Millisecond))
	assert.Equal(t, 3, c.clears)
}

func TestPlay_SharesOneLoop(t *testing.T) {
	sched := frameloop.NewManualScheduler()
	loop := frameloop.New(sched)
	helix, circuit := NewHelix(), NewCircuit()

	Play(loop, helix, &countingCanvas{w: 80, h: 384})
	Play(loop, circuit, &countingCanvas{w: 172, h: 330})

	sched.Tick(0)
	sched.Tick(time.Second)

	assert.Equal(t, time.Second, helix.Now())
	assert.Equal(t, time.Second, circuit.Now())
	assert.Equal(t, 1, sched.Pending())
}
