package ports

import (
	"context"
	"errors"
	"time"
)

// ErrResetTokenNotFound covers missing, consumed, and expired reset tokens.
var ErrResetTokenNotFound = errors.New("password reset token not found")

// ResetTokenStore persists single-use password reset tokens.
type ResetTokenStore interface {
	Save(ctx context.Context, token, userID string, expiresAt time.Time) error
	// Consume invalidates the token and returns the user it was issued for.
	Consume(ctx context.Context, token string) (string, error)
}
