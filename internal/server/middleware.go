package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/pickmate/fulfillment-api/internal/auth"
)

type contextKey string

const claimsKey contextKey = "claims"

// protectMiddleware is the capability gate in front of every handler:
// no valid bearer token, no handler logic.
func (s *Server) protectMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondError(w, http.StatusUnauthorized, "Missing or invalid authorization header")
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := auth.ValidateToken(s.config.JWTSecret, tokenStr)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaims retrieves the token claims from the context. Only reachable
// behind protectMiddleware, so a nil result means a wiring bug.
func GetClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}
