package users

import (
	"context"
	"testing"

	pkgAuth "github.com/greenloopdev/wastetrack-backend/pkg/auth"
	"github.com/greenloopdev/wastetrack-backend/pkg/db/models"
	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
	pkgerrors "github.com/greenloopdev/wastetrack-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUsers(t *testing.T, repo Repository) {
	t.Helper()
	for _, user := range []models.User{
		{Username: "admin", Role: enums.RoleAdmin},
		{Username: "collector", Role: enums.RoleWorker},
		{Username: "resident", Role: enums.RolePublic},
	} {
		u := user
		require.NoError(t, repo.Create(context.Background(), &u))
	}
}

func TestListWorkersReturnsStaffOnly(t *testing.T) {
	repo := NewMemoryRepository()
	seedUsers(t, repo)

	svc, err := NewService(repo)
	require.NoError(t, err)

	actor := pkgAuth.Identity{UserID: 1, Username: "admin", Role: enums.RoleAdmin}
	workers, err := svc.ListWorkers(context.Background(), actor)
	require.NoError(t, err)
	require.Len(t, workers, 2)
	// Alphabetical by username.
	assert.Equal(t, "admin", workers[0].Username)
	assert.Equal(t, "collector", workers[1].Username)
}

func TestListWorkersRejectsPublicRole(t *testing.T) {
	repo := NewMemoryRepository()
	seedUsers(t, repo)

	svc, err := NewService(repo)
	require.NoError(t, err)

	actor := pkgAuth.Identity{UserID: 3, Username: "resident", Role: enums.RolePublic}
	_, err = svc.ListWorkers(context.Background(), actor)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeForbidden, appErr.Code())
}

func TestMemoryRepositoryEnforcesUniqueUsername(t *testing.T) {
	repo := NewMemoryRepository()

	first := &models.User{Username: "resident", Role: enums.RolePublic}
	require.NoError(t, repo.Create(context.Background(), first))

	dup := &models.User{Username: "resident", Role: enums.RolePublic}
	err := repo.Create(context.Background(), dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
}
