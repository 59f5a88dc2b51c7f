package models

import (
	"time"

	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
)

// Complaint is a citizen-reported issue. ResolvedBy records the staff member
// who last changed the status, regardless of which status was set.
type Complaint struct {
	ID           int64                   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       int64                   `gorm:"column:user_id;not null" json:"user_id"`
	Title        string                  `gorm:"type:text;not null" json:"title"`
	Description  string                  `gorm:"type:text;not null" json:"description"`
	Latitude     *float64                `json:"latitude"`
	Longitude    *float64                `json:"longitude"`
	LocationName *string                 `gorm:"column:location_name" json:"location_name"`
	Priority     enums.ComplaintPriority `gorm:"type:text;not null;default:medium" json:"priority"`
	Status       enums.ComplaintStatus   `gorm:"type:text;not null;default:pending" json:"status"`
	ResolvedBy   *int64                  `gorm:"column:resolved_by" json:"resolved_by,omitempty"`
	CreatedAt    time.Time               `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time               `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
