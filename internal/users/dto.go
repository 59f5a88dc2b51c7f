package users

import (
	"github.com/greenloopdev/wastetrack-backend/pkg/db/models"
	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
)

// UserDTO is the wire representation of an account.
type UserDTO struct {
	ID       int64      `json:"id"`
	Username string     `json:"username"`
	Role     enums.Role `json:"role"`
}

// FromModel maps the persistence model onto the wire shape.
func FromModel(user *models.User) *UserDTO {
	if user == nil {
		return nil
	}
	return &UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}

// WorkerDTO is the assignment-picker entry exposed by the worker directory.
type WorkerDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
