package bins

import (
	"context"
	"fmt"

	pkgAuth "github.com/greenloopdev/wastetrack-backend/pkg/auth"
	"github.com/greenloopdev/wastetrack-backend/pkg/db/models"
	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
	pkgerrors "github.com/greenloopdev/wastetrack-backend/pkg/errors"
)

// Service covers the bin registry operations.
type Service interface {
	ListActive(ctx context.Context) ([]BinView, error)
	Create(ctx context.Context, actor pkgAuth.Identity, input CreateBinInput) (*BinView, error)
	SoftDelete(ctx context.Context, actor pkgAuth.Identity, id int64) error
	MarkFull(ctx context.Context, actor pkgAuth.Identity, id int64) (*BinView, error)
}

type service struct {
	repo Repository
}

// NewService wires the bin registry dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("bins repository is required")
	}
	return &service{repo: repo}, nil
}

// ListActive returns the bins on the public map. Inactive and full bins are
// excluded so the map only shows containers accepting waste.
func (s *service) ListActive(ctx context.Context) ([]BinView, error) {
	rows, err := s.repo.ListByStatus(ctx, enums.BinStatusActive)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list bins")
	}
	views := make([]BinView, 0, len(rows))
	for i := range rows {
		views = append(views, *FromModel(&rows[i]))
	}
	return views, nil
}

func (s *service) Create(ctx context.Context, actor pkgAuth.Identity, input CreateBinInput) (*BinView, error) {
	if !actor.IsStaff() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "worker or admin role required")
	}

	binType, err := enums.ParseBinType(input.Type)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid bin type")
	}
	if input.Latitude == nil || input.Longitude == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "latitude and longitude are required")
	}
	if *input.Latitude < -90 || *input.Latitude > 90 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "latitude must be between -90 and 90")
	}
	if *input.Longitude < -180 || *input.Longitude > 180 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "longitude must be between -180 and 180")
	}

	createdBy := actor.UserID
	bin := &models.Bin{
		Type:         binType,
		Latitude:     *input.Latitude,
		Longitude:    *input.Longitude,
		LocationName: input.LocationName,
		Status:       enums.BinStatusActive,
		CreatedBy:    &createdBy,
	}
	if err := s.repo.Create(ctx, bin); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create bin")
	}
	return FromModel(bin), nil
}

// SoftDelete retires a bin from the map by flipping it to inactive. Retiring
// an already-inactive bin succeeds again; only a missing id is an error.
func (s *service) SoftDelete(ctx context.Context, actor pkgAuth.Identity, id int64) error {
	if !actor.IsStaff() {
		return pkgerrors.New(pkgerrors.CodeForbidden, "worker or admin role required")
	}

	found, err := s.repo.UpdateStatus(ctx, id, enums.BinStatusInactive)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deactivate bin")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "bin not found")
	}
	return nil
}

// MarkFull flags a bin as needing collection. Field staff use it to pull a
// container off the public map until it is emptied.
func (s *service) MarkFull(ctx context.Context, actor pkgAuth.Identity, id int64) (*BinView, error) {
	if !actor.IsStaff() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "worker or admin role required")
	}

	found, err := s.repo.UpdateStatus(ctx, id, enums.BinStatusFull)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mark bin full")
	}
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "bin not found")
	}

	bin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload bin")
	}
	return FromModel(bin), nil
}
