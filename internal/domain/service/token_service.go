package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeAccess marks tokens accepted by the private API.
const TokenTypeAccess = "access"

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID   uuid.UUID `json:"uid"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	Type     string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken issues a signed access token for the user.
	GenerateAccessToken(userID uuid.UUID, username, role string) (token string, expiresAt time.Time, err error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the lifetime of access tokens.
	AccessTokenDuration() time.Duration
}
