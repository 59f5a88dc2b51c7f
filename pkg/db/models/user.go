package models

import (
	"time"

	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
)

// User represents the canonical identity entity. Accounts are created on
// first login (trust-on-first-use by username) and never deleted; the role
// is fixed at creation.
type User struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string     `gorm:"type:text;not null;uniqueIndex" json:"username"`
	Role      enums.Role `gorm:"type:text;not null;default:public" json:"role"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
