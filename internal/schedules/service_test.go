package schedules

import (
	"context"
	"testing"

	pkgAuth "github.com/greenloopdev/wastetrack-backend/pkg/auth"
	"github.com/greenloopdev/wastetrack-backend/pkg/db"
	"github.com/greenloopdev/wastetrack-backend/pkg/db/models"
	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
	pkgerrors "github.com/greenloopdev/wastetrack-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserDirectory struct {
	users map[int64]models.User
}

func (f *fakeUserDirectory) FindByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &user, nil
}

func (f *fakeUserDirectory) ListByIDs(_ context.Context, ids []int64) (map[int64]models.User, error) {
	result := make(map[int64]models.User, len(ids))
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			result[id] = user
		}
	}
	return result, nil
}

type fakeBinDirectory struct {
	bins map[int64]models.Bin
}

func (f *fakeBinDirectory) FindByID(_ context.Context, id int64) (*models.Bin, error) {
	bin, ok := f.bins[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &bin, nil
}

func (f *fakeBinDirectory) ListByIDs(_ context.Context, ids []int64) (map[int64]models.Bin, error) {
	result := make(map[int64]models.Bin, len(ids))
	for _, id := range ids {
		if bin, ok := f.bins[id]; ok {
			result[id] = bin
		}
	}
	return result, nil
}

var (
	adminActor   = pkgAuth.Identity{UserID: 1, Username: "admin", Role: enums.RoleAdmin}
	workerActor  = pkgAuth.Identity{UserID: 2, Username: "collector", Role: enums.RoleWorker}
	publicActor  = pkgAuth.Identity{UserID: 3, Username: "resident", Role: enums.RolePublic}
	otherWorker  = pkgAuth.Identity{UserID: 5, Username: "driver", Role: enums.RoleWorker}
	binLocation  = "Cooperative Store"
	testBinID    = int64(10)
	testBinsByID = map[int64]models.Bin{
		testBinID: {ID: testBinID, Type: enums.BinTypePlastic, LocationName: &binLocation, Status: enums.BinStatusActive},
	}
)

func newTestService(t *testing.T) (Service, Repository) {
	t.Helper()
	repo := NewMemoryRepository()
	svc, err := NewService(ServiceParams{
		Repo: repo,
		Users: &fakeUserDirectory{users: map[int64]models.User{
			1: {ID: 1, Username: "admin", Role: enums.RoleAdmin},
			2: {ID: 2, Username: "collector", Role: enums.RoleWorker},
			3: {ID: 3, Username: "resident", Role: enums.RolePublic},
			5: {ID: 5, Username: "driver", Role: enums.RoleWorker},
		}},
		Bins: &fakeBinDirectory{bins: testBinsByID},
	})
	require.NoError(t, err)
	return svc, repo
}

func TestCreateRequiresDateAndTime(t *testing.T) {
	svc, _ := newTestService(t)

	for _, input := range []CreateScheduleInput{
		{CollectionTime: "09:00"},
		{CollectionDate: "2026-09-01"},
		{CollectionDate: "01-09-2026", CollectionTime: "09:00"},
		{CollectionDate: "2026-09-01", CollectionTime: "9am"},
	} {
		_, err := svc.Create(context.Background(), publicActor, input)
		appErr := pkgerrors.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
	}
}

func TestCreateAssignmentFieldsAreAdminOnly(t *testing.T) {
	svc, _ := newTestService(t)

	workerID := int64(2)
	_, err := svc.Create(context.Background(), publicActor, CreateScheduleInput{
		CollectionDate:   "2026-09-01",
		CollectionTime:   "09:00",
		AssignedWorkerID: &workerID,
	})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeForbidden, appErr.Code())

	view, err := svc.Create(context.Background(), adminActor, CreateScheduleInput{
		CollectionDate:   "2026-09-01",
		CollectionTime:   "09:00",
		AssignedWorkerID: &workerID,
	})
	require.NoError(t, err)
	require.NotNil(t, view.AssignedWorkerID)
	assert.Equal(t, workerID, *view.AssignedWorkerID)
	require.NotNil(t, view.AssignedWorkerName)
	assert.Equal(t, "collector", *view.AssignedWorkerName)
}

func TestCreateRejectsNonWorkerAssignee(t *testing.T) {
	svc, _ := newTestService(t)

	citizenID := int64(3)
	_, err := svc.Create(context.Background(), adminActor, CreateScheduleInput{
		CollectionDate:   "2026-09-01",
		CollectionTime:   "09:00",
		AssignedWorkerID: &citizenID,
	})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestCreateEnrichesBinDetails(t *testing.T) {
	svc, _ := newTestService(t)

	view, err := svc.Create(context.Background(), publicActor, CreateScheduleInput{
		BinID:          &testBinID,
		CollectionDate: "2026-09-02",
		CollectionTime: "07:30",
	})
	require.NoError(t, err)
	require.NotNil(t, view.BinLocation)
	assert.Equal(t, binLocation, *view.BinLocation)
	require.NotNil(t, view.BinType)
	assert.Equal(t, enums.BinTypePlastic, *view.BinType)
	assert.Equal(t, "resident", view.UserName)
	assert.Equal(t, enums.ScheduleStatusScheduled, view.Status)
}

func TestListScopesByRole(t *testing.T) {
	svc, repo := newTestService(t)
	// Resident's own request.
	seedSchedule(t, repo, 3, nil, "2026-09-01", "08:00")
	// Another citizen's request assigned to the worker.
	assignee := int64(2)
	seedSchedule(t, repo, 4, &assignee, "2026-09-02", "09:00")
	// Worker's own request, also assigned to them: must not be duplicated.
	seedSchedule(t, repo, 2, &assignee, "2026-09-03", "10:00")

	own, err := svc.List(context.Background(), publicActor)
	require.NoError(t, err)
	require.Len(t, own, 1)

	visible, err := svc.List(context.Background(), workerActor)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	// Latest collection date first.
	assert.Equal(t, "2026-09-03", visible[0].CollectionDate)

	all, err := svc.List(context.Background(), adminActor)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestUpdateStatusByAssignedWorker(t *testing.T) {
	svc, repo := newTestService(t)
	assignee := int64(2)
	id := seedSchedule(t, repo, 3, &assignee, "2026-09-01", "08:00")

	collector := "K. Joseph"
	view, err := svc.UpdateStatus(context.Background(), workerActor, id, UpdateStatusInput{
		Status:        "completed",
		CollectorName: &collector,
	})
	require.NoError(t, err)
	assert.Equal(t, enums.ScheduleStatusCompleted, view.Status)
	require.NotNil(t, view.CollectorName)
	assert.Equal(t, collector, *view.CollectorName)
}

func TestUpdateStatusRejectsUnassignedWorker(t *testing.T) {
	svc, repo := newTestService(t)
	assignee := int64(2)
	id := seedSchedule(t, repo, 3, &assignee, "2026-09-01", "08:00")

	_, err := svc.UpdateStatus(context.Background(), otherWorker, id, UpdateStatusInput{Status: "completed"})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeForbidden, appErr.Code())

	// Admin may update regardless of assignment.
	view, err := svc.UpdateStatus(context.Background(), adminActor, id, UpdateStatusInput{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, enums.ScheduleStatusCancelled, view.Status)
}

func TestAssignWorkerIsAdminOnly(t *testing.T) {
	svc, repo := newTestService(t)
	id := seedSchedule(t, repo, 3, nil, "2026-09-01", "08:00")

	_, err := svc.AssignWorker(context.Background(), workerActor, id, AssignWorkerInput{WorkerID: 5})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeForbidden, appErr.Code())

	view, err := svc.AssignWorker(context.Background(), adminActor, id, AssignWorkerInput{WorkerID: 5})
	require.NoError(t, err)
	require.NotNil(t, view.AssignedWorkerID)
	assert.Equal(t, int64(5), *view.AssignedWorkerID)
	require.NotNil(t, view.AssignedWorkerName)
	assert.Equal(t, "driver", *view.AssignedWorkerName)
}

func TestAssignWorkerRecordsAdminNotes(t *testing.T) {
	svc, repo := newTestService(t)
	id := seedSchedule(t, repo, 3, nil, "2026-09-01", "08:00")

	notes := "use the side entrance"
	view, err := svc.AssignWorker(context.Background(), adminActor, id, AssignWorkerInput{WorkerID: 5, AdminNotes: &notes})
	require.NoError(t, err)
	require.NotNil(t, view.AdminNotes)
	assert.Equal(t, notes, *view.AdminNotes)

	// Reassigning without notes keeps the earlier ones.
	view, err = svc.AssignWorker(context.Background(), adminActor, id, AssignWorkerInput{WorkerID: 1})
	require.NoError(t, err)
	require.NotNil(t, view.AdminNotes)
	assert.Equal(t, notes, *view.AdminNotes)
}

func TestAssignWorkerUnknownScheduleIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AssignWorker(context.Background(), adminActor, 404, AssignWorkerInput{WorkerID: 5})
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func seedSchedule(t *testing.T, repo Repository, userID int64, assignedWorkerID *int64, date, clock string) int64 {
	t.Helper()
	schedule := &models.Schedule{
		UserID:           userID,
		CollectionDate:   date,
		CollectionTime:   clock,
		AssignedWorkerID: assignedWorkerID,
		Status:           enums.ScheduleStatusScheduled,
	}
	require.NoError(t, repo.Create(context.Background(), schedule))
	return schedule.ID
}
