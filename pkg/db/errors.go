package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is the sentinel both store backends return when a row is
// missing. It aliases GORM's sentinel so relational lookups need no mapping.
var ErrNotFound = gorm.ErrRecordNotFound

// IsNotFound reports whether err means the requested row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUniqueViolation reports whether the provided error references a unique
// constraint violation. Both SQLite and Postgres mention the constraint in
// the error text, so a substring check covers the drivers in use.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key value")
}
