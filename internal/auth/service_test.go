package auth

import (
	"context"
	"testing"

	"github.com/greenloopdev/wastetrack-backend/internal/users"
	pkgAuth "github.com/greenloopdev/wastetrack-backend/pkg/auth"
	"github.com/greenloopdev/wastetrack-backend/pkg/config"
	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
	pkgerrors "github.com/greenloopdev/wastetrack-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionManager struct {
	generated []string
}

func (f *fakeSessionManager) Generate(_ context.Context, accessID string) (string, error) {
	f.generated = append(f.generated, accessID)
	return "refresh-" + accessID, nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "test-secret",
		Issuer:                 "wastetrack",
		ExpirationMinutes:      60,
		RefreshTokenTTLMinutes: 1440,
	}
}

func newTestService(t *testing.T) (Service, users.Repository, *fakeSessionManager) {
	t.Helper()
	repo := users.NewMemoryRepository()
	sessions := &fakeSessionManager{}
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: sessions,
		JWTConfig:      testJWTConfig(),
	})
	require.NoError(t, err)
	return svc, repo, sessions
}

func TestLoginCreatesPublicUserOnFirstUse(t *testing.T) {
	svc, _, sessions := newTestService(t)

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "resident"})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, "resident", resp.User.Username)
	assert.Equal(t, enums.RolePublic, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Len(t, sessions.generated, 1)
}

func TestLoginAdminLiteralBootstrapsAdmin(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "admin"})
	require.NoError(t, err)
	assert.Equal(t, enums.RoleAdmin, resp.User.Role)
}

func TestLoginIsIdempotentPerUsername(t *testing.T) {
	svc, _, _ := newTestService(t)

	first, err := svc.Login(context.Background(), LoginRequest{Username: "resident"})
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), LoginRequest{Username: "resident"})
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, first.User.Role, second.User.Role)
}

func TestLoginTrimsWhitespaceAndRejectsBlank(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "  resident  "})
	require.NoError(t, err)
	assert.Equal(t, "resident", resp.User.Username)

	_, err = svc.Login(context.Background(), LoginRequest{Username: "   "})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestLoginTokenCarriesIdentity(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "admin"})
	require.NoError(t, err)

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	require.NoError(t, err)
	identity := claims.Identity()
	assert.Equal(t, resp.User.ID, identity.UserID)
	assert.Equal(t, "admin", identity.Username)
	assert.Equal(t, enums.RoleAdmin, identity.Role)
}
