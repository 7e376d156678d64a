// File: internal/ratelimit/ratelimit_test.go
package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testLimiter(maxAttempts int, window time.Duration) *MemoryRateLimiter {
	return NewMemoryRateLimiter(&Config{
		WindowSize:    window,
		MaxAttempts:   maxAttempts,
		CleanupPeriod: time.Hour,
	})
}

func TestAllowWithinLimit(t *testing.T) {
	limiter := testLimiter(3, time.Minute)
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("1.2.3.4"), "attempt %d should pass", i+1)
	}
	assert.False(t, limiter.Allow("1.2.3.4"))
}

func TestAllowSeparateIdentifiers(t *testing.T) {
	limiter := testLimiter(1, time.Minute)
	defer limiter.Stop()

	assert.True(t, limiter.Allow("a"))
	assert.False(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("b"))
}

func TestWindowResets(t *testing.T) {
	limiter := testLimiter(1, 20*time.Millisecond)
	defer limiter.Stop()

	assert.True(t, limiter.Allow("x"))
	assert.False(t, limiter.Allow("x"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, limiter.Allow("x"))
}

func TestCleanupDropsStaleEntries(t *testing.T) {
	limiter := testLimiter(1, 10*time.Millisecond)
	defer limiter.Stop()

	limiter.Allow("stale")
	time.Sleep(20 * time.Millisecond)
	limiter.cleanup()

	limiter.mu.Lock()
	_, exists := limiter.attempts["stale"]
	limiter.mu.Unlock()
	assert.False(t, exists)
}
