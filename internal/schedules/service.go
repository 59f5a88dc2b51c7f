package schedules

import (
	"context"
	"fmt"
	"strings"
	"time"

	pkgAuth "github.com/greenloopdev/wastetrack-backend/pkg/auth"
	"github.com/greenloopdev/wastetrack-backend/pkg/db"
	"github.com/greenloopdev/wastetrack-backend/pkg/db/models"
	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
	pkgerrors "github.com/greenloopdev/wastetrack-backend/pkg/errors"
)

// Service covers the collection-schedule operations.
type Service interface {
	List(ctx context.Context, actor pkgAuth.Identity) ([]ScheduleView, error)
	Create(ctx context.Context, actor pkgAuth.Identity, input CreateScheduleInput) (*ScheduleView, error)
	UpdateStatus(ctx context.Context, actor pkgAuth.Identity, id int64, input UpdateStatusInput) (*ScheduleView, error)
	AssignWorker(ctx context.Context, actor pkgAuth.Identity, id int64, input AssignWorkerInput) (*ScheduleView, error)
}

type userDirectory interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	ListByIDs(ctx context.Context, ids []int64) (map[int64]models.User, error)
}

type binDirectory interface {
	FindByID(ctx context.Context, id int64) (*models.Bin, error)
	ListByIDs(ctx context.Context, ids []int64) (map[int64]models.Bin, error)
}

type service struct {
	repo  Repository
	users userDirectory
	bins  binDirectory
}

// ServiceParams bundles the dependencies required to build a schedules service.
type ServiceParams struct {
	Repo  Repository
	Users userDirectory
	Bins  binDirectory
}

// NewService wires the schedule desk dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("schedules repository is required")
	}
	if params.Users == nil {
		return nil, fmt.Errorf("user directory is required")
	}
	if params.Bins == nil {
		return nil, fmt.Errorf("bin directory is required")
	}
	return &service{repo: params.Repo, users: params.Users, bins: params.Bins}, nil
}

// List returns schedules ordered by collection date then time, most recent
// first. Citizens see their own requests, workers additionally see schedules
// assigned to them, administrators see everything.
func (s *service) List(ctx context.Context, actor pkgAuth.Identity) ([]ScheduleView, error) {
	var (
		rows []models.Schedule
		err  error
	)
	switch {
	case actor.IsAdmin():
		rows, err = s.repo.ListAll(ctx)
	case actor.Role == enums.RoleWorker:
		rows, err = s.repo.ListVisibleToWorker(ctx, actor.UserID)
	default:
		rows, err = s.repo.ListByUser(ctx, actor.UserID)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list schedules")
	}
	return s.enrich(ctx, rows)
}

func (s *service) Create(ctx context.Context, actor pkgAuth.Identity, input CreateScheduleInput) (*ScheduleView, error) {
	date := strings.TrimSpace(input.CollectionDate)
	clock := strings.TrimSpace(input.CollectionTime)
	if date == "" || clock == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "collection_date and collection_time are required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "collection_date must be YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", clock); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "collection_time must be HH:MM")
	}

	// Assignment fields on create are an administrative action, not a
	// request detail.
	if (input.AssignedWorkerID != nil || input.AdminNotes != nil) && !actor.IsAdmin() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "admin role required to assign workers or set admin notes")
	}
	if input.AssignedWorkerID != nil {
		if err := s.checkAssignee(ctx, *input.AssignedWorkerID); err != nil {
			return nil, err
		}
	}
	if input.BinID != nil {
		if _, err := s.bins.FindByID(ctx, *input.BinID); err != nil {
			if db.IsNotFound(err) {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "bin not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find bin")
		}
	}

	schedule := &models.Schedule{
		UserID:           actor.UserID,
		BinID:            input.BinID,
		CollectionDate:   date,
		CollectionTime:   clock,
		Notes:            input.Notes,
		AdminNotes:       input.AdminNotes,
		AssignedWorkerID: input.AssignedWorkerID,
		Status:           enums.ScheduleStatusScheduled,
	}
	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create schedule")
	}

	views, err := s.enrich(ctx, []models.Schedule{*schedule})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// UpdateStatus moves a schedule through its lifecycle. Administrators may
// update any schedule; a worker only the ones assigned to them.
func (s *service) UpdateStatus(ctx context.Context, actor pkgAuth.Identity, id int64, input UpdateStatusInput) (*ScheduleView, error) {
	if !actor.IsStaff() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "worker or admin role required")
	}

	status, err := enums.ParseScheduleStatus(input.Status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
	}

	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "schedule not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find schedule")
	}

	if !actor.IsAdmin() {
		assigned := schedule.AssignedWorkerID != nil && *schedule.AssignedWorkerID == actor.UserID
		if !assigned {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "schedule is not assigned to you")
		}
	}

	schedule.Status = status
	if input.CollectorName != nil {
		schedule.CollectorName = input.CollectorName
	}
	if err := s.repo.Update(ctx, schedule); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update schedule")
	}

	views, err := s.enrich(ctx, []models.Schedule{*schedule})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// AssignWorker hands a schedule to a collection worker. Admin only.
func (s *service) AssignWorker(ctx context.Context, actor pkgAuth.Identity, id int64, input AssignWorkerInput) (*ScheduleView, error) {
	if !actor.IsAdmin() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "admin role required")
	}

	if err := s.checkAssignee(ctx, input.WorkerID); err != nil {
		return nil, err
	}

	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "schedule not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find schedule")
	}

	workerID := input.WorkerID
	schedule.AssignedWorkerID = &workerID
	if input.AdminNotes != nil {
		schedule.AdminNotes = input.AdminNotes
	}
	if err := s.repo.Update(ctx, schedule); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update schedule")
	}

	views, err := s.enrich(ctx, []models.Schedule{*schedule})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// checkAssignee verifies the target account exists and holds a staff role.
func (s *service) checkAssignee(ctx context.Context, workerID int64) error {
	worker, err := s.users.FindByID(ctx, workerID)
	if err != nil {
		if db.IsNotFound(err) {
			return pkgerrors.New(pkgerrors.CodeValidation, "assigned worker not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find worker")
	}
	if !worker.Role.IsStaff() {
		return pkgerrors.New(pkgerrors.CodeValidation, "assigned user is not a worker")
	}
	return nil
}

// enrich joins requester and assignee usernames plus bin location and type
// onto the rows with one lookup per directory.
func (s *service) enrich(ctx context.Context, rows []models.Schedule) ([]ScheduleView, error) {
	userIDSet := make(map[int64]struct{}, len(rows))
	binIDSet := make(map[int64]struct{})
	for _, row := range rows {
		userIDSet[row.UserID] = struct{}{}
		if row.AssignedWorkerID != nil {
			userIDSet[*row.AssignedWorkerID] = struct{}{}
		}
		if row.BinID != nil {
			binIDSet[*row.BinID] = struct{}{}
		}
	}

	userIDs := make([]int64, 0, len(userIDSet))
	for id := range userIDSet {
		userIDs = append(userIDs, id)
	}
	binIDs := make([]int64, 0, len(binIDSet))
	for id := range binIDSet {
		binIDs = append(binIDs, id)
	}

	names, err := s.users.ListByIDs(ctx, userIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve usernames")
	}
	binRows, err := s.bins.ListByIDs(ctx, binIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve bins")
	}

	views := make([]ScheduleView, 0, len(rows))
	for i := range rows {
		view := viewFromModel(&rows[i])
		if user, ok := names[rows[i].UserID]; ok {
			view.UserName = user.Username
		}
		if rows[i].AssignedWorkerID != nil {
			if user, ok := names[*rows[i].AssignedWorkerID]; ok {
				name := user.Username
				view.AssignedWorkerName = &name
			}
		}
		if rows[i].BinID != nil {
			if bin, ok := binRows[*rows[i].BinID]; ok {
				view.BinLocation = bin.LocationName
				binType := bin.Type
				view.BinType = &binType
			}
		}
		views = append(views, view)
	}
	return views, nil
}
