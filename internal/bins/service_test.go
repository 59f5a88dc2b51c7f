package bins

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

type fakeRepo struct {
	createFn       func(ctx context.Context, bin *models.Bin) error
	findByIDFn     func(ctx context.Context, id int64) (*models.Bin, error)
	listByStatusFn func(ctx context.Context, status enums.BinStatus) ([]models.Bin, error)
	updateStatusFn func(ctx context.Context, id int64, status enums.BinStatus) (bool, error)
	listByIDsFn    func(ctx context.Context, ids []int64) (map[int64]models.Bin, error)
}

func (f *fakeRepo) Create(ctx context.Context, bin *models.Bin) error {
	return f.createFn(ctx, bin)
}

func (f *fakeRepo) FindByID(ctx context.Context, id int64) (*models.Bin, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeRepo) ListByStatus(ctx context.Context, status enums.BinStatus) ([]models.Bin, error) {
	return f.listByStatusFn(ctx, status)
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id int64, status enums.BinStatus) (bool, error) {
	return f.updateStatusFn(ctx, id, status)
}

func (f *fakeRepo) ListByIDs(ctx context.Context, ids []int64) (map[int64]models.Bin, error) {
	return f.listByIDsFn(ctx, ids)
}

func floatPtr(v float64) *float64 { return &v }

var (
	adminActor  = pkgAuth.Identity{UserID: 1, Username: "admin", Role: enums.RoleAdmin}
	workerActor = pkgAuth.Identity{UserID: 2, Username: "collector", Role: enums.RoleWorker}
	publicActor = pkgAuth.Identity{UserID: 3, Username: "resident", Role: enums.RolePublic}
)

func TestListActiveFiltersToActiveStatus(t *testing.T) {
	var requested enums.BinStatus
	svc, err := NewService(&fakeRepo{
		listByStatusFn: func(_ context.Context, status enums.BinStatus) ([]models.Bin, error) {
			requested = status
			return []models.Bin{
				{ID: 1, Type: enums.BinTypePaper, Status: enums.BinStatusActive},
				{ID: 2, Type: enums.BinTypeMetal, Status: enums.BinStatusActive},
			}, nil
		},
	})
	require.NoError(t, err)

	views, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, enums.BinStatusActive, requested)
	require.Len(t, views, 2)
	assert.Equal(t, int64(1), views[0].ID)
}

func TestCreateRejectsPublicRole(t *testing.T) {
	svc, err := NewService(&fakeRepo{})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), publicActor, CreateBinInput{
		Type:      "paper",
		Latitude:  floatPtr(9.939),
		Longitude: floatPtr(76.32),
	})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeForbidden, appErr.Code())
}

func TestCreateValidatesTypeAndCoordinates(t *testing.T) {
	svc, err := NewService(&fakeRepo{})
	require.NoError(t, err)

	cases := []struct {
		name  string
		input CreateBinInput
	}{
		{"unknown type", CreateBinInput{Type: "glass", Latitude: floatPtr(0), Longitude: floatPtr(0)}},
		{"missing latitude", CreateBinInput{Type: "paper", Longitude: floatPtr(0)}},
		{"latitude out of range", CreateBinInput{Type: "paper", Latitude: floatPtr(91), Longitude: floatPtr(0)}},
		{"longitude out of range", CreateBinInput{Type: "paper", Latitude: floatPtr(0), Longitude: floatPtr(-181)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), workerActor, tc.input)
			appErr := pkgerrors.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
		})
	}
}

func TestCreateStampsCreatorAndActiveStatus(t *testing.T) {
	var stored *models.Bin
	svc, err := NewService(&fakeRepo{
		createFn: func(_ context.Context, bin *models.Bin) error {
			bin.ID = 7
			stored = bin
			return nil
		},
	})
	require.NoError(t, err)

	name := "Open Gym"
	view, err := svc.Create(context.Background(), workerActor, CreateBinInput{
		Type:         "plastic",
		Latitude:     floatPtr(9.939616),
		Longitude:    floatPtr(76.320068),
		LocationName: &name,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotNil(t, stored.CreatedBy)
	assert.Equal(t, workerActor.UserID, *stored.CreatedBy)
	assert.Equal(t, enums.BinStatusActive, stored.Status)
	assert.Equal(t, int64(7), view.ID)
	assert.Equal(t, enums.BinTypePlastic, view.Type)
}

func TestSoftDeleteRequiresStaff(t *testing.T) {
	svc, err := NewService(&fakeRepo{})
	require.NoError(t, err)

	err = svc.SoftDelete(context.Background(), publicActor, 1)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeForbidden, appErr.Code())
}

func TestSoftDeleteIsIdempotent(t *testing.T) {
	repo := NewMemoryRepository()
	bin := &models.Bin{Type: enums.BinTypePaper, Status: enums.BinStatusActive}
	require.NoError(t, repo.Create(context.Background(), bin))

	svc, err := NewService(repo)
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(context.Background(), adminActor, bin.ID))
	// Deleting the same bin again is still a success.
	require.NoError(t, svc.SoftDelete(context.Background(), adminActor, bin.ID))

	stored, err := repo.FindByID(context.Background(), bin.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.BinStatusInactive, stored.Status)
}

func TestSoftDeleteMissingBinIsNotFound(t *testing.T) {
	svc, err := NewService(NewMemoryRepository())
	require.NoError(t, err)

	err = svc.SoftDelete(context.Background(), adminActor, 99)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestMarkFullRemovesBinFromActiveList(t *testing.T) {
	repo := NewMemoryRepository()
	bin := &models.Bin{Type: enums.BinTypeMetal, Status: enums.BinStatusActive}
	require.NoError(t, repo.Create(context.Background(), bin))

	svc, err := NewService(repo)
	require.NoError(t, err)

	view, err := svc.MarkFull(context.Background(), workerActor, bin.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.BinStatusFull, view.Status)

	active, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, active)
}
