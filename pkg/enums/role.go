package enums

import "fmt"

// Role represents the permission tier attached to a user.
type Role string

const (
	RolePublic Role = "public"
	RoleWorker Role = "worker"
	RoleAdmin  Role = "admin"
)

var validRoles = []Role{
	RolePublic,
	RoleWorker,
	RoleAdmin,
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// IsStaff reports whether the role grants worker-level mutation rights.
func (r Role) IsStaff() bool {
	return r == RoleWorker || r == RoleAdmin
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}

// RoleForUsername derives the role assigned on first login. The literal
// "admin" username is the only bootstrap administrator; everyone else
// starts as a public citizen.
func RoleForUsername(username string) Role {
	if username == "admin" {
		return RoleAdmin
	}
	return RolePublic
}
