package schedules

import (
	"time"

	"github.com/greenloopdev/wastetrack-backend/pkg/db/models"
	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
)

// ScheduleView is the read shape served to clients, with requester and
// assignee usernames plus bin location joined in at read time.
type ScheduleView struct {
	ID                 int64                `json:"id"`
	UserID             int64                `json:"user_id"`
	UserName           string               `json:"user_name"`
	BinID              *int64               `json:"bin_id"`
	BinLocation        *string              `json:"bin_location"`
	BinType            *enums.BinType       `json:"bin_type"`
	CollectionDate     string               `json:"collection_date"`
	CollectionTime     string               `json:"collection_time"`
	Notes              *string              `json:"notes"`
	AdminNotes         *string              `json:"admin_notes,omitempty"`
	AssignedWorkerID   *int64               `json:"assigned_worker_id"`
	AssignedWorkerName *string              `json:"assigned_worker_name"`
	Status             enums.ScheduleStatus `json:"status"`
	CollectorName      *string              `json:"collector_name"`
	CreatedAt          time.Time            `json:"created_at"`
}

func viewFromModel(s *models.Schedule) ScheduleView {
	return ScheduleView{
		ID:               s.ID,
		UserID:           s.UserID,
		BinID:            s.BinID,
		CollectionDate:   s.CollectionDate,
		CollectionTime:   s.CollectionTime,
		Notes:            s.Notes,
		AdminNotes:       s.AdminNotes,
		AssignedWorkerID: s.AssignedWorkerID,
		Status:           s.Status,
		CollectorName:    s.CollectorName,
		CreatedAt:        s.CreatedAt,
	}
}

// CreateScheduleInput carries the fields accepted when requesting a pickup.
// AssignedWorkerID and AdminNotes are only honored for administrators.
type CreateScheduleInput struct {
	BinID            *int64  `json:"bin_id"`
	CollectionDate   string  `json:"collection_date" validate:"required"`
	CollectionTime   string  `json:"collection_time" validate:"required"`
	Notes            *string `json:"notes"`
	AdminNotes       *string `json:"admin_notes"`
	AssignedWorkerID *int64  `json:"assigned_worker_id"`
}

// UpdateStatusInput carries a status change and the optional collector name
// recorded alongside it.
type UpdateStatusInput struct {
	Status        string  `json:"status" validate:"required"`
	CollectorName *string `json:"collector_name"`
}

// AssignWorkerInput names the worker an administrator assigns to a schedule,
// with optional notes for the crew.
type AssignWorkerInput struct {
	WorkerID   int64   `json:"worker_id" validate:"required"`
	AdminNotes *string `json:"admin_notes"`
}
