package models

import (
	"time"

	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
)

// Schedule is a collection request. Dates and times are stored as their wire
// formats (YYYY-MM-DD, HH:MM) so lexicographic ordering matches chronological
// ordering across both store backends.
type Schedule struct {
	ID               int64                `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           int64                `gorm:"column:user_id;not null" json:"user_id"`
	BinID            *int64               `gorm:"column:bin_id" json:"bin_id"`
	CollectionDate   string               `gorm:"column:collection_date;type:text;not null" json:"collection_date"`
	CollectionTime   string               `gorm:"column:collection_time;type:text;not null" json:"collection_time"`
	Notes            *string              `gorm:"type:text" json:"notes"`
	AdminNotes       *string              `gorm:"column:admin_notes;type:text" json:"admin_notes,omitempty"`
	AssignedWorkerID *int64               `gorm:"column:assigned_worker_id" json:"assigned_worker_id"`
	Status           enums.ScheduleStatus `gorm:"type:text;not null;default:scheduled" json:"status"`
	CollectorName    *string              `gorm:"column:collector_name" json:"collector_name"`
	CreatedAt        time.Time            `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
