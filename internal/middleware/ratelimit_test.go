// File: internal/middleware/ratelimit_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bizchat-labs/bizchat/internal/ratelimit"
)

func TestClientIPTakesFirstForwardedHop(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1, 172.16.0.2")
	assert.Equal(t, "203.0.113.7", clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	assert.Equal(t, "203.0.113.7", clientIP(req))
}

func TestClientIPFallsBackToRemoteAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.9:51234"
	assert.Equal(t, "192.0.2.9", clientIP(req))
}

func TestRateLimitMiddlewareBucketsByForwardedClient(t *testing.T) {
	limiter := ratelimit.NewMemoryRateLimiter(&ratelimit.Config{
		WindowSize:    time.Minute,
		MaxAttempts:   1,
		CleanupPeriod: time.Minute,
	})
	defer limiter.Stop()

	handler := NewRateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.7, 10.0.0.1"))
	// Same client behind a different proxy chain shares the bucket.
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.7, 10.0.0.2"))
	assert.Equal(t, http.StatusOK, send("198.51.100.4, 10.0.0.1"))
}
