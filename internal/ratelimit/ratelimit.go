// File: internal/ratelimit/ratelimit.go
package ratelimit

import (
	"sync"
	"time"
)

// Config holds rate limiting configuration.
type Config struct {
	WindowSize    time.Duration // time window for counting attempts
	MaxAttempts   int           // maximum attempts per window
	CleanupPeriod time.Duration // how often stale entries are dropped
}

// DefaultChatConfig limits the public chat endpoint per visitor.
func DefaultChatConfig() *Config {
	return &Config{
		WindowSize:    time.Minute,
		MaxAttempts:   20,
		CleanupPeriod: 10 * time.Minute,
	}
}

// DefaultAuthConfig limits login attempts per IP.
func DefaultAuthConfig() *Config {
	return &Config{
		WindowSize:    15 * time.Minute,
		MaxAttempts:   5,
		CleanupPeriod: 30 * time.Minute,
	}
}

type attemptRecord struct {
	Count     int
	FirstSeen time.Time
}

// MemoryRateLimiter implements in-memory fixed-window rate limiting.
type MemoryRateLimiter struct {
	config   *Config
	attempts map[string]*attemptRecord
	mu       sync.Mutex
	stopCh   chan struct{}
}

func NewMemoryRateLimiter(config *Config) *MemoryRateLimiter {
	limiter := &MemoryRateLimiter{
		config:   config,
		attempts: make(map[string]*attemptRecord),
		stopCh:   make(chan struct{}),
	}
	go limiter.cleanupLoop()
	return limiter
}

// Allow records an attempt for the identifier and reports whether it stays
// inside the window limit.
func (rl *MemoryRateLimiter) Allow(identifier string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	record, exists := rl.attempts[identifier]
	if !exists || now.Sub(record.FirstSeen) > rl.config.WindowSize {
		rl.attempts[identifier] = &attemptRecord{Count: 1, FirstSeen: now}
		return true
	}

	record.Count++
	return record.Count <= rl.config.MaxAttempts
}

// Stop terminates the cleanup goroutine.
func (rl *MemoryRateLimiter) Stop() {
	close(rl.stopCh)
}

func (rl *MemoryRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCh:
			return
		case <-ticker.C:
			rl.cleanup()
		}
	}
}

func (rl *MemoryRateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-rl.config.WindowSize)
	for id, record := range rl.attempts {
		if record.FirstSeen.Before(cutoff) {
			delete(rl.attempts, id)
		}
	}
}
