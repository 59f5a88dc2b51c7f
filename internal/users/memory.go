package users

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/greenloopdev/wastetrack-backend/pkg/db"
	"github.com/greenloopdev/wastetrack-backend/pkg/db/models"
)

// memoryRepository keeps users in process memory. Writes are serialized by
// the mutex; ids are assigned from a monotonically increasing counter.
type memoryRepository struct {
	mu     sync.Mutex
	rows   map[int64]models.User
	byName map[string]int64
	nextID int64
}

// NewMemoryRepository returns an empty in-memory users repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		rows:   make(map[int64]models.User),
		byName: make(map[string]int64),
		nextID: 1,
	}
}

func (r *memoryRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[user.Username]; exists {
		return fmt.Errorf("users: UNIQUE constraint failed: users.username %q", user.Username)
	}

	user.ID = r.nextID
	r.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	r.rows[user.ID] = *user
	r.byName[user.Username] = user.ID
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &row, nil
}

func (r *memoryRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byName[username]
	if !ok {
		return nil, db.ErrNotFound
	}
	row := r.rows[id]
	return &row, nil
}

func (r *memoryRepository) ListStaff(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var staff []models.User
	for _, row := range r.rows {
		if row.Role.IsStaff() {
			staff = append(staff, row)
		}
	}
	sort.Slice(staff, func(i, j int) bool { return staff[i].Username < staff[j].Username })
	return staff, nil
}

func (r *memoryRepository) ListByIDs(_ context.Context, ids []int64) (map[int64]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[int64]models.User, len(ids))
	for _, id := range ids {
		if row, ok := r.rows[id]; ok {
			result[id] = row
		}
	}
	return result, nil
}
