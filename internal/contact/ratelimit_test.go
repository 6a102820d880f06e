package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_BurstPerKey(t *testing.T) {
	l := NewRateLimiter(1, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("a"), "request %d", i)
	}
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"), "keys are independent")
	assert.Equal(t, 2, l.Len())
}

func TestRateLimiter_Defaults(t *testing.T) {
	l := NewRateLimiter(0, -1)

	assert.Equal(t, 3, l.burst)
	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("k"))
	}
	assert.False(t, l.Allow("k"))
}

func TestRateLimiter_Prune(t *testing.T) {
	l := NewRateLimiter(1, 2)

	l.Allow("busy")
	l.getLimiter("idle")

	assert.Equal(t, 1, l.Prune())
	assert.Equal(t, 1, l.Len())
}
