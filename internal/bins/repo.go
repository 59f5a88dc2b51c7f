package bins

import (
	"context"

	"github.com/greenloopdev/wastetrack-backend/pkg/db/models"
	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository exposes bin persistence behind an interface so the relational
// and in-memory backends are interchangeable.
type Repository interface {
	Create(ctx context.Context, bin *models.Bin) error
	FindByID(ctx context.Context, id int64) (*models.Bin, error)
	ListByStatus(ctx context.Context, status enums.BinStatus) ([]models.Bin, error)
	UpdateStatus(ctx context.Context, id int64, status enums.BinStatus) (bool, error)
	ListByIDs(ctx context.Context, ids []int64) (map[int64]models.Bin, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository returns a bins repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, bin *models.Bin) error {
	return r.db.WithContext(ctx).Create(bin).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id int64) (*models.Bin, error) {
	var bin models.Bin
	if err := r.db.WithContext(ctx).First(&bin, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &bin, nil
}

func (r *gormRepository) ListByStatus(ctx context.Context, status enums.BinStatus) ([]models.Bin, error) {
	var rows []models.Bin
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateStatus writes the new status and reports whether the row exists.
// Setting the status a bin already holds counts as found, which is what
// makes soft deletion idempotent.
func (r *gormRepository) UpdateStatus(ctx context.Context, id int64, status enums.BinStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Bin{}).
		Where("id = ?", id).
		UpdateColumn("status", status)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	// SQLite reports zero affected rows for no-op updates; distinguish a
	// missing bin from an unchanged one.
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Bin{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormRepository) ListByIDs(ctx context.Context, ids []int64) (map[int64]models.Bin, error) {
	result := make(map[int64]models.Bin, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var rows []models.Bin
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ID] = row
	}
	return result, nil
}
