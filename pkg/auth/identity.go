package auth

import "github.com/greenloopdev/wastetrack-backend/pkg/enums"

// Identity is the resolved caller passed explicitly into every service
// operation. Services never read authentication state from ambient context;
// the HTTP layer resolves the identity once and hands it down.
type Identity struct {
	UserID   int64
	Username string
	Role     enums.Role
}

// IsStaff reports whether the identity may perform worker/admin mutations.
func (i Identity) IsStaff() bool {
	return i.Role.IsStaff()
}

// IsAdmin reports whether the identity holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == enums.RoleAdmin
}
