package users

import (
	"context"

	pkgAuth "github.com/greenloopdev/wastetrack-backend/pkg/auth"
	pkgerrors "github.com/greenloopdev/wastetrack-backend/pkg/errors"
)

// Service exposes the worker directory used to populate assignment pickers.
type Service interface {
	ListWorkers(ctx context.Context, actor pkgAuth.Identity) ([]WorkerDTO, error)
}

type service struct {
	repo Repository
}

// NewService wires the worker directory dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "users repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListWorkers(ctx context.Context, actor pkgAuth.Identity) ([]WorkerDTO, error) {
	if !actor.IsStaff() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "worker or admin role required")
	}

	staff, err := s.repo.ListStaff(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list staff")
	}

	workers := make([]WorkerDTO, 0, len(staff))
	for _, user := range staff {
		workers = append(workers, WorkerDTO{ID: user.ID, Username: user.Username})
	}
	return workers, nil
}
