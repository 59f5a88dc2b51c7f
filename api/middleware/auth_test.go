package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgAuth "github.com/greenloopdev/wastetrack-backend/pkg/auth"
	"github.com/greenloopdev/wastetrack-backend/pkg/config"
	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	live map[string]bool
	err  error
}

func (f *fakeChecker) HasSession(_ context.Context, accessID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.live[accessID], nil
}

func authTestConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "middleware-test-secret",
		Issuer:            "wastetrack",
		ExpirationMinutes: 60,
	}
}

func mintToken(t *testing.T, cfg config.JWTConfig, jti string) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID:   7,
		Username: "collector",
		Role:     enums.RoleWorker,
		JTI:      jti,
	})
	require.NoError(t, err)
	return token
}

func TestAuthSeedsIdentity(t *testing.T) {
	cfg := authTestConfig()
	checker := &fakeChecker{live: map[string]bool{"jti-1": true}}

	var seen pkgAuth.Identity
	handler := Auth(cfg, checker, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		require.True(t, ok)
		seen = identity
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, cfg, "jti-1"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), seen.UserID)
	assert.Equal(t, "collector", seen.Username)
	assert.Equal(t, enums.RoleWorker, seen.Role)
}

func TestAuthRejectsMissingAndMalformedTokens(t *testing.T) {
	cfg := authTestConfig()
	checker := &fakeChecker{live: map[string]bool{}}
	handler := Auth(cfg, checker, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	for _, header := range []string{"", "Bearer ", "Bearer not-a-jwt"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
}

func TestAuthRejectsRevokedSession(t *testing.T) {
	cfg := authTestConfig()
	checker := &fakeChecker{live: map[string]bool{}}
	handler := Auth(cfg, checker, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, cfg, "revoked"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleMatchesAnyListedRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	worker := pkgAuth.Identity{UserID: 1, Username: "collector", Role: enums.RoleWorker}
	citizen := pkgAuth.Identity{UserID: 2, Username: "resident", Role: enums.RolePublic}

	handler := RequireRole(nil, enums.RoleWorker, enums.RoleAdmin)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithIdentity(req.Context(), worker))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithIdentity(req.Context(), citizen))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// No identity at all means unauthenticated, not forbidden.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
