package users

import (
	"context"

	"github.com/greenloopdev/wastetrack-backend/pkg/db/models"
	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository exposes user persistence. Two implementations exist: the GORM
// one below and the in-memory store in memory.go; services depend only on
// this interface so backends swap without behavior change.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	ListStaff(ctx context.Context) ([]models.User, error)
	ListByIDs(ctx context.Context, ids []int64) (map[int64]models.User, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormRepository) ListStaff(ctx context.Context) ([]models.User, error) {
	var staff []models.User
	err := r.db.WithContext(ctx).
		Where("role IN ?", []enums.Role{enums.RoleWorker, enums.RoleAdmin}).
		Order("username ASC").
		Find(&staff).Error
	if err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *gormRepository) ListByIDs(ctx context.Context, ids []int64) (map[int64]models.User, error) {
	result := make(map[int64]models.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var rows []models.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ID] = row
	}
	return result, nil
}
