package middleware

import (
	"context"
	"net/http"
	"strings"

	"caderneta-backend/internal/auth"
)

type contextKey string

const (
	userIDKey contextKey = "user_id"
	emailKey  contextKey = "email"
	claimsKey contextKey = "claims"
)

// RevocationChecker answers whether a token ID has been signed out.
// Satisfied by repositories.RevokedTokenRepository.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware guards protected routes: it extracts the bearer token,
// verifies it and rejects revoked sessions. A 401 here is the API
// analogue of the login redirect.
type AuthMiddleware struct {
	JWT     *auth.JWTManager
	Revoked RevocationChecker
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, revoked RevocationChecker) *AuthMiddleware {
	return &AuthMiddleware{JWT: jwtManager, Revoked: revoked}
}

// RequireAuth verifies the session token and stores the claims in the
// request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			http.Error(w, "Missing authorization token", http.StatusUnauthorized)
			return
		}

		claims, err := m.JWT.Verify(token)
		if err != nil {
			http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		if m.Revoked != nil {
			revoked, err := m.Revoked.IsRevoked(r.Context(), claims.ID)
			if err != nil {
				http.Error(w, "Failed to validate session", http.StatusInternalServerError)
				return
			}
			if revoked {
				http.Error(w, "Session has been signed out", http.StatusUnauthorized)
				return
			}
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.Subject)
		ctx = context.WithValue(ctx, emailKey, claims.Email)
		ctx = context.WithValue(ctx, claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken reads the bearer token from the Authorization header,
// falling back to the token query parameter for websocket clients that
// cannot set headers.
func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return r.URL.Query().Get("token")
}

// GetUserIDFromContext returns the authenticated user ID.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// GetEmailFromContext returns the authenticated email.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok
}

// GetClaimsFromContext returns the full token claims.
func GetClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
