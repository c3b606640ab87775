package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeAccess is the only token type accepted by this service.
const TokenTypeAccess = "access"

// Claims defines the custom claims carried by access tokens. The subject is the user ID.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService validates access tokens issued by the account service.
// Token issuance and refresh live outside this service.
type TokenService interface {
	// ValidateAccessToken verifies signature, expiry and token type.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
