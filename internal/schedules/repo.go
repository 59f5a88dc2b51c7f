package schedules

import (
	"context"

	"github.com/greenloopdev/wastetrack-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes schedule persistence behind an interface so the
// relational and in-memory backends are interchangeable.
type Repository interface {
	Create(ctx context.Context, schedule *models.Schedule) error
	FindByID(ctx context.Context, id int64) (*models.Schedule, error)
	ListAll(ctx context.Context) ([]models.Schedule, error)
	ListVisibleToWorker(ctx context.Context, workerID int64) ([]models.Schedule, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Schedule, error)
	Update(ctx context.Context, schedule *models.Schedule) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository returns a schedules repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

const upcomingFirst = "collection_date DESC, collection_time DESC, id DESC"

func (r *gormRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id int64) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := r.db.WithContext(ctx).First(&schedule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *gormRepository) ListAll(ctx context.Context) ([]models.Schedule, error) {
	var rows []models.Schedule
	err := r.db.WithContext(ctx).
		Order(upcomingFirst).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListVisibleToWorker returns the union of schedules the worker filed and
// schedules assigned to them, without duplicates.
func (r *gormRepository) ListVisibleToWorker(ctx context.Context, workerID int64) ([]models.Schedule, error) {
	var rows []models.Schedule
	err := r.db.WithContext(ctx).
		Where("user_id = ? OR assigned_worker_id = ?", workerID, workerID).
		Order(upcomingFirst).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gormRepository) ListByUser(ctx context.Context, userID int64) ([]models.Schedule, error) {
	var rows []models.Schedule
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(upcomingFirst).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gormRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}
