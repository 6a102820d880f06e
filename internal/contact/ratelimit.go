package contact

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client key.
type RateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewRateLimiter allows perMinute submissions per key with the given
// burst. Non-positive values fall back to 10 per minute and a burst of 3.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	if burst <= 0 {
		burst = 3
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
	}
}

// Allow reports whether key may submit now, consuming a token if so.
func (m *RateLimiter) Allow(key string) bool {
	return m.getLimiter(key).Allow()
}

func (m *RateLimiter) getLimiter(key string) *rate.Limiter {
	m.mu.RLock()
	limiter, exists := m.limiters[key]
	m.mu.RUnlock()
	if exists {
		return limiter
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double check after taking the write lock
	if limiter, exists = m.limiters[key]; exists {
		return limiter
	}
	limiter = rate.NewLimiter(m.limit, m.burst)
	m.limiters[key] = limiter
	return limiter
}

// Prune drops limiters that are back at full burst, which are
// indistinguishable from fresh ones.
func (m *RateLimiter) Prune() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	now := time.Now()
	for key, l := range m.limiters {
		if l.TokensAt(now) >= float64(m.burst) {
			delete(m.limiters, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (m *RateLimiter) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.limiters)
}
