package models

import (
	"time"

	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
)

// Bin is a physical waste container shown on the public map. Rows are never
// removed; soft deletion flips the status to inactive so historical schedule
// references stay valid.
type Bin struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Type         enums.BinType   `gorm:"type:text;not null" json:"type"`
	Latitude     float64         `gorm:"not null" json:"latitude"`
	Longitude    float64         `gorm:"not null" json:"longitude"`
	LocationName *string         `gorm:"column:location_name" json:"location_name"`
	Status       enums.BinStatus `gorm:"type:text;not null;default:active" json:"status"`
	CreatedBy    *int64          `gorm:"column:created_by" json:"created_by,omitempty"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
