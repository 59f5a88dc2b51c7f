package complaints

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

// Service covers the complaint desk operations.
type Service interface {
	List(ctx context.Context, actor pkgAuth.Identity) ([]ComplaintView, error)
	Create(ctx context.Context, actor pkgAuth.Identity, input CreateComplaintInput) (*ComplaintView, error)
	UpdateStatus(ctx context.Context, actor pkgAuth.Identity, id int64, input UpdateStatusInput) (*ComplaintView, error)
}

type userDirectory interface {
	ListByIDs(ctx context.Context, ids []int64) (map[int64]models.User, error)
}

type service struct {
	repo  Repository
	users userDirectory
}

// ServiceParams bundles the dependencies required to build a complaints service.
type ServiceParams struct {
	Repo  Repository
	Users userDirectory
}

// NewService wires the complaint desk dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("complaints repository is required")
	}
	if params.Users == nil {
		return nil, fmt.Errorf("user directory is required")
	}
	return &service{repo: params.Repo, users: params.Users}, nil
}

// List returns complaints newest first. Staff see every complaint; citizens
// see only their own filings.
func (s *service) List(ctx context.Context, actor pkgAuth.Identity) ([]ComplaintView, error) {
	var (
		rows []models.Complaint
		err  error
	)
	if actor.IsStaff() {
		rows, err = s.repo.ListAll(ctx)
	} else {
		rows, err = s.repo.ListByUser(ctx, actor.UserID)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list complaints")
	}
	return s.enrich(ctx, rows)
}

func (s *service) Create(ctx context.Context, actor pkgAuth.Identity, input CreateComplaintInput) (*ComplaintView, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title and description are required")
	}

	priority := enums.ComplaintPriorityMedium
	if raw := strings.TrimSpace(input.Priority); raw != "" {
		parsed, err := enums.ParseComplaintPriority(raw)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid priority")
		}
		priority = parsed
	}

	complaint := &models.Complaint{
		UserID:       actor.UserID,
		Title:        title,
		Description:  description,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		LocationName: input.LocationName,
		Priority:     priority,
		Status:       enums.ComplaintStatusPending,
	}
	if err := s.repo.Create(ctx, complaint); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create complaint")
	}

	views, err := s.enrich(ctx, []models.Complaint{*complaint})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// UpdateStatus moves a complaint through triage and stamps the acting staff
// member as resolver on every transition, so the record always shows who
// touched it last.
func (s *service) UpdateStatus(ctx context.Context, actor pkgAuth.Identity, id int64, input UpdateStatusInput) (*ComplaintView, error) {
	if !actor.IsStaff() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "worker or admin role required")
	}

	status, err := enums.ParseComplaintStatus(input.Status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
	}

	complaint, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "complaint not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find complaint")
	}

	resolver := actor.UserID
	complaint.Status = status
	complaint.ResolvedBy = &resolver
	complaint.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, complaint); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update complaint")
	}

	views, err := s.enrich(ctx, []models.Complaint{*complaint})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// enrich joins reporter and resolver usernames onto the rows in one directory
// lookup.
func (s *service) enrich(ctx context.Context, rows []models.Complaint) ([]ComplaintView, error) {
	idSet := make(map[int64]struct{}, len(rows))
	for _, row := range rows {
		idSet[row.UserID] = struct{}{}
		if row.ResolvedBy != nil {
			idSet[*row.ResolvedBy] = struct{}{}
		}
	}
	ids := make([]int64, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	names, err := s.users.ListByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve usernames")
	}

	views := make([]ComplaintView, 0, len(rows))
	for i := range rows {
		view := viewFromModel(&rows[i])
		if user, ok := names[rows[i].UserID]; ok {
			view.UserName = user.Username
		}
		if rows[i].ResolvedBy != nil {
			if user, ok := names[*rows[i].ResolvedBy]; ok {
				name := user.Username
				view.ResolvedByName = &name
			}
		}
		views = append(views, view)
	}
	return views, nil
}
