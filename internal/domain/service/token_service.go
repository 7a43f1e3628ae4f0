package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for session tokens.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session tokens.
type TokenService interface {
	// GenerateSessionToken signs a token carrying the session id.
	GenerateSessionToken(sessionID string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetSessionTokenDuration returns how long issued tokens stay valid.
	GetSessionTokenDuration() time.Duration
}
