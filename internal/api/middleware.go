package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/mathevilla/server/internal/store"
)

type ctxKey int

const userKey ctxKey = 1

// userFromContext returns the authenticated user set by requireAuth.
func userFromContext(ctx context.Context) *store.User {
	u, _ := ctx.Value(userKey).(*store.User)
	return u
}

// requireAuth resolves the bearer token to a user and stores it on the
// request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			respondError(w, http.StatusUnauthorized, "Ungültiger Token")
			return
		}
		user, err := s.Auth.Authenticate(r.Context(), strings.TrimSpace(token))
		if err != nil {
			respondServiceError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin gates a route to admin accounts. Must run after
// requireAuth.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := userFromContext(r.Context())
		if user == nil || user.Role != "admin" {
			respondError(w, http.StatusForbidden, "Admin-Zugang erforderlich")
			return
		}
		next.ServeHTTP(w, r)
	})
}
