// Package auth provides token issuance/verification and password hashing.
package auth

import (
	"context"
	"time"
)

// Claims holds the verified contents of an access token.
type Claims struct {
	UserID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string // jti
}

// JWTService issues and verifies signed, time-limited bearer tokens.
// Tokens are stateless: there is no revocation list, so a token stays
// valid until its natural expiry.
type JWTService interface {
	// GenerateToken creates a signed access token for the given user.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken verifies signature and expiry and returns the claims.
	// Returns ErrExpiredToken for expired tokens and ErrInvalidToken for
	// malformed tokens or signature mismatches.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
