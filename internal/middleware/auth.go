// File: internal/middleware/auth.go
package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/bizchat-labs/bizchat/internal/auth"
)

type contextKey string

// BusinessIDKey carries the authenticated business ID through the request
// context.
const BusinessIDKey contextKey = "businessID"

// NewJWTMiddleware validates the owner-session token from the auth cookie
// and stores the business ID on the request context.
func NewJWTMiddleware(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("auth_token")
			if err != nil {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}

			businessID, err := auth.ValidateToken(cookie.Value, secretKey)
			if err != nil {
				log.Printf("[AuthMiddleware] Invalid token: %v", err)
				http.Error(w, "invalid or expired session", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), BusinessIDKey, businessID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BusinessIDFromContext extracts the authenticated business ID.
func BusinessIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(BusinessIDKey).(uint)
	return id, ok
}
