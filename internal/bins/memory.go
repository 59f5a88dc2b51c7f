package bins

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/greenloopdev/wastetrack-backend/pkg/db"
	"github.com/greenloopdev/wastetrack-backend/pkg/db/models"
	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
)

type memoryRepository struct {
	mu     sync.Mutex
	rows   map[int64]models.Bin
	nextID int64
}

// NewMemoryRepository returns an empty in-memory bins repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		rows:   make(map[int64]models.Bin),
		nextID: 1,
	}
}

func (r *memoryRepository) Create(_ context.Context, bin *models.Bin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bin.ID = r.nextID
	r.nextID++
	if bin.CreatedAt.IsZero() {
		bin.CreatedAt = time.Now().UTC()
	}
	r.rows[bin.ID] = *bin
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (*models.Bin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &row, nil
}

func (r *memoryRepository) ListByStatus(_ context.Context, status enums.BinStatus) ([]models.Bin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var rows []models.Bin
	for _, row := range r.rows {
		if row.Status == status {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (r *memoryRepository) UpdateStatus(_ context.Context, id int64, status enums.BinStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return false, nil
	}
	row.Status = status
	r.rows[id] = row
	return true, nil
}

func (r *memoryRepository) ListByIDs(_ context.Context, ids []int64) (map[int64]models.Bin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[int64]models.Bin, len(ids))
	for _, id := range ids {
		if row, ok := r.rows[id]; ok {
			result[id] = row
		}
	}
	return result, nil
}
