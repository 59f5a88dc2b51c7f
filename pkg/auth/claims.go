package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/greenloopdev/wastetrack-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID   int64
	Username string
	Role     enums.Role
	JTI      string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	UserID   int64      `json:"user_id"`
	Username string     `json:"username"`
	Role     enums.Role `json:"role"`
	jwt.RegisteredClaims
}

// Identity converts the claims into the explicit identity passed to services.
func (c *AccessTokenClaims) Identity() Identity {
	return Identity{
		UserID:   c.UserID,
		Username: c.Username,
		Role:     c.Role,
	}
}
