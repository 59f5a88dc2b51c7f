package complaints

import (
	"context"

	"github.com/greenloopdev/wastetrack-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes complaint persistence behind an interface so the
// relational and in-memory backends are interchangeable.
type Repository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	FindByID(ctx context.Context, id int64) (*models.Complaint, error)
	ListAll(ctx context.Context) ([]models.Complaint, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Complaint, error)
	Update(ctx context.Context, complaint *models.Complaint) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository returns a complaints repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id int64) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := r.db.WithContext(ctx).First(&complaint, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *gormRepository) ListAll(ctx context.Context) ([]models.Complaint, error) {
	var rows []models.Complaint
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gormRepository) ListByUser(ctx context.Context, userID int64) ([]models.Complaint, error) {
	var rows []models.Complaint
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gormRepository) Update(ctx context.Context, complaint *models.Complaint) error {
	return r.db.WithContext(ctx).Save(complaint).Error
}
