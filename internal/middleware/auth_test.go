package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"caderneta-backend/internal/auth"
	"caderneta-backend/internal/config"
)

type fakeRevocation struct {
	revoked map[string]bool
}

func (f *fakeRevocation) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return f.revoked[jti], nil
}

func testManager() *auth.JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiryHours = 1
	return auth.NewJWTManager(cfg)
}

func okHandler(t *testing.T, wantUserID string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		if !ok {
			t.Error("user ID missing from context")
		}
		if userID != wantUserID {
			t.Errorf("user ID = %q, want %q", userID, wantUserID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	m := testManager()
	mw := NewAuthMiddleware(m, &fakeRevocation{revoked: map[string]bool{}})

	token, _, err := m.Generate("user-1", "a@b.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/persons", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.RequireAuth(okHandler(t, "user-1")).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireAuthAcceptsQueryToken(t *testing.T) {
	m := testManager()
	mw := NewAuthMiddleware(m, &fakeRevocation{revoked: map[string]bool{}})

	token, _, err := m.Generate("user-1", "a@b.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/events?token="+token, nil)
	rec := httptest.NewRecorder()

	mw.RequireAuth(okHandler(t, "user-1")).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	mw := NewAuthMiddleware(testManager(), &fakeRevocation{revoked: map[string]bool{}})

	req := httptest.NewRequest(http.MethodGet, "/api/persons", nil)
	rec := httptest.NewRecorder()
	mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	mw := NewAuthMiddleware(testManager(), &fakeRevocation{revoked: map[string]bool{}})

	req := httptest.NewRequest(http.MethodGet, "/api/persons", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthRejectsRevokedToken(t *testing.T) {
	m := testManager()
	token, claims, err := m.Generate("user-1", "a@b.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	mw := NewAuthMiddleware(m, &fakeRevocation{revoked: map[string]bool{claims.ID: true}})

	req := httptest.NewRequest(http.MethodGet, "/api/persons", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for a signed-out session")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
