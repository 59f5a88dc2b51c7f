package complaints

import (
	"time"

	"github.com/greenloopdev/wastetrack-backend/pkg/db/models"
	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
)

// ComplaintView is the read shape served to clients. Reporter and resolver
// usernames are joined in at read time so the tables stay normalized.
type ComplaintView struct {
	ID             int64                   `json:"id"`
	UserID         int64                   `json:"user_id"`
	UserName       string                  `json:"user_name"`
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	Latitude       *float64                `json:"latitude"`
	Longitude      *float64                `json:"longitude"`
	LocationName   *string                 `json:"location_name"`
	Priority       enums.ComplaintPriority `json:"priority"`
	Status         enums.ComplaintStatus   `json:"status"`
	ResolvedBy     *int64                  `json:"resolved_by"`
	ResolvedByName *string                 `json:"resolved_by_name"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

func viewFromModel(c *models.Complaint) ComplaintView {
	return ComplaintView{
		ID:           c.ID,
		UserID:       c.UserID,
		Title:        c.Title,
		Description:  c.Description,
		Latitude:     c.Latitude,
		Longitude:    c.Longitude,
		LocationName: c.LocationName,
		Priority:     c.Priority,
		Status:       c.Status,
		ResolvedBy:   c.ResolvedBy,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// CreateComplaintInput carries the fields accepted when filing a complaint.
type CreateComplaintInput struct {
	Title        string   `json:"title" validate:"required,max=255"`
	Description  string   `json:"description" validate:"required"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	LocationName *string  `json:"location_name" validate:"omitempty,max=255"`
	Priority     string   `json:"priority"`
}

// UpdateStatusInput carries the status written by staff triaging a complaint.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}
