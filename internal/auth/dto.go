package auth

import "github.com/greenloopdev/wastetrack-backend/internal/users"

// LoginRequest carries the username presented to the login endpoint. There is
// no password: identity is trust-on-first-use by name.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
}

// LoginResponse contains the token pair and the resolved (possibly freshly
// created) user.
type LoginResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	User         *users.UserDTO `json:"user"`
}
