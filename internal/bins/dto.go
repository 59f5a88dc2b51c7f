package bins

import (
	"time"

	"github.com/greenloopdev/wastetrack-backend/pkg/db/models"
	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
)

// BinView is the read shape served to clients.
type BinView struct {
	ID           int64           `json:"id"`
	Type         enums.BinType   `json:"type"`
	Latitude     float64         `json:"latitude"`
	Longitude    float64         `json:"longitude"`
	LocationName *string         `json:"location_name"`
	Status       enums.BinStatus `json:"status"`
	CreatedBy    *int64          `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
}

// FromModel converts a stored bin into its API shape.
func FromModel(bin *models.Bin) *BinView {
	if bin == nil {
		return nil
	}
	return &BinView{
		ID:           bin.ID,
		Type:         bin.Type,
		Latitude:     bin.Latitude,
		Longitude:    bin.Longitude,
		LocationName: bin.LocationName,
		Status:       bin.Status,
		CreatedBy:    bin.CreatedBy,
		CreatedAt:    bin.CreatedAt,
	}
}

// CreateBinInput carries the fields accepted when registering a bin.
type CreateBinInput struct {
	Type         string   `json:"type" validate:"required"`
	Latitude     *float64 `json:"latitude" validate:"required"`
	Longitude    *float64 `json:"longitude" validate:"required"`
	LocationName *string  `json:"location_name" validate:"omitempty,max=255"`
}
