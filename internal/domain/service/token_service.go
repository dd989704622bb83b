package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims embedded in session tokens.
// The user ID and role are everything the middleware needs to gate routes.
type Claims struct {
	UserID int64  `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed session token embedding the user's identity and role.
	Generate(userID int64, role string) (string, error)

	// Validate checks a token string and returns its claims when valid.
	Validate(tokenString string) (*Claims, error)
}
