package schedules

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
	rows   map[int64]models.Schedule
	nextID int64
}

// NewMemoryRepository returns an empty in-memory schedules repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		rows:   make(map[int64]models.Schedule),
		nextID: 1,
	}
}

func (r *memoryRepository) Create(_ context.Context, schedule *models.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	schedule.ID = r.nextID
	r.nextID++
	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = time.Now().UTC()
	}
	r.rows[schedule.ID] = *schedule
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (*models.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &row, nil
}

func (r *memoryRepository) ListAll(_ context.Context) ([]models.Schedule, error) {
	return r.listWhere(func(models.Schedule) bool { return true })
}

func (r *memoryRepository) ListVisibleToWorker(_ context.Context, workerID int64) ([]models.Schedule, error) {
	return r.listWhere(func(row models.Schedule) bool {
		if row.UserID == workerID {
			return true
		}
		return row.AssignedWorkerID != nil && *row.AssignedWorkerID == workerID
	})
}

func (r *memoryRepository) ListByUser(_ context.Context, userID int64) ([]models.Schedule, error) {
	return r.listWhere(func(row models.Schedule) bool { return row.UserID == userID })
}

func (r *memoryRepository) Update(_ context.Context, schedule *models.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[schedule.ID]; !ok {
		return db.ErrNotFound
	}
	r.rows[schedule.ID] = *schedule
	return nil
}

func (r *memoryRepository) listWhere(keep func(models.Schedule) bool) ([]models.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var rows []models.Schedule
	for _, row := range r.rows {
		if keep(row) {
			rows = append(rows, row)
		}
	}
	// Dates and times are stored as YYYY-MM-DD and HH:MM, so string
	// comparison is chronological.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CollectionDate != rows[j].CollectionDate {
			return rows[i].CollectionDate > rows[j].CollectionDate
		}
		if rows[i].CollectionTime != rows[j].CollectionTime {
			return rows[i].CollectionTime > rows[j].CollectionTime
		}
		return rows[i].ID > rows[j].ID
	})
	return rows, nil
}
