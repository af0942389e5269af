package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fitnova/central/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// Authenticator resolves the user that owns a plaintext API key.
type Authenticator interface {
	Authenticate(ctx context.Context, apiKey string) (*domain.User, error)
}

func UserFromContext(ctx context.Context) *domain.User {
	u, _ := ctx.Value(userContextKey).(*domain.User)
	return u
}

// WithUser returns ctx carrying u, as APIKeyAuth does. Handlers under test
// use it to skip authentication.
func WithUser(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

// APIKeyAuth requires "Authorization: Bearer <key>" and puts the owning
// user in the request context.
func APIKeyAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				writeError(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			user, err := auth.Authenticate(r.Context(), parts[1])
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid API key")
				return
			}

			noteUser(r.Context(), user.ID.String())
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
