package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/akoval/taskhub/internal/api/response"
	"github.com/akoval/taskhub/internal/security"
)

type contextKey string

const identityKey contextKey = "identity"

// AuthMiddleware guards protected routes with bearer token validation
type AuthMiddleware struct {
	tokenManager *security.TokenManager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokenManager *security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tokenManager}
}

// Authenticate validates the bearer token and stores the resulting
// identity in the request context. Every failure mode is a plain 401;
// why the token was rejected is never surfaced.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Not authenticated")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.Unauthorized(w, "Not authenticated")
			return
		}

		identity, err := m.tokenManager.Validate(parts[1])
		if err != nil {
			response.Unauthorized(w, "Could not validate user.")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity gets the authenticated identity from context
func GetIdentity(ctx context.Context) (security.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(security.Identity)
	return identity, ok
}
