package complaints

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/greenloopdev/wastetrack-backend/pkg/db"
	"github.com/greenloopdev/wastetrack-backend/pkg/db/models"
)

type memoryRepository struct {
	mu     sync.Mutex
	rows   map[int64]models.Complaint
	nextID int64
}

// NewMemoryRepository returns an empty in-memory complaints repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		rows:   make(map[int64]models.Complaint),
		nextID: 1,
	}
}

func (r *memoryRepository) Create(_ context.Context, complaint *models.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	complaint.ID = r.nextID
	r.nextID++
	now := time.Now().UTC()
	if complaint.CreatedAt.IsZero() {
		complaint.CreatedAt = now
	}
	if complaint.UpdatedAt.IsZero() {
		complaint.UpdatedAt = now
	}
	r.rows[complaint.ID] = *complaint
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (*models.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &row, nil
}

func (r *memoryRepository) ListAll(_ context.Context) ([]models.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([]models.Complaint, 0, len(r.rows))
	for _, row := range r.rows {
		rows = append(rows, row)
	}
	sortNewestFirst(rows)
	return rows, nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID int64) ([]models.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var rows []models.Complaint
	for _, row := range r.rows {
		if row.UserID == userID {
			rows = append(rows, row)
		}
	}
	sortNewestFirst(rows)
	return rows, nil
}

func (r *memoryRepository) Update(_ context.Context, complaint *models.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[complaint.ID]; !ok {
		return db.ErrNotFound
	}
	r.rows[complaint.ID] = *complaint
	return nil
}

func sortNewestFirst(rows []models.Complaint) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].ID > rows[j].ID
		}
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
}
