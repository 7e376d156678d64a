// File: internal/middleware/ratelimit.go
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/bizchat-labs/bizchat/internal/ratelimit"
)

// NewRateLimitMiddleware rejects requests over the limit with 429.
// Requests are bucketed by client IP.
func NewRateLimitMiddleware(limiter *ratelimit.MemoryRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r)) {
				http.Error(w, `{"error": "too many requests, please slow down"}`, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// The header grows a hop per proxy; the first element is the
		// original client.
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
