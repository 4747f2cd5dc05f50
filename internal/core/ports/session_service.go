package ports

import (
	"context"

	"github.com/drosado/accounts-api/internal/core/domain"
)

// SessionService owns the session lifecycle: issuing, validating (with lazy
// expiry and sliding renewal) and invalidating sessions.
type SessionService interface {
	// Create persists a new session for userID derived from token.
	Create(ctx context.Context, token string, userID int64) (*domain.Session, error)

	// Validate resolves a presented token to its session and owning user.
	// Both results are nil (with a nil error) when the token matches no live
	// session; an expired row is deleted on the way out.
	Validate(ctx context.Context, token string) (*domain.Session, *domain.User, error)

	// Invalidate deletes a session by ID. Deleting an unknown ID is not an error.
	Invalidate(ctx context.Context, sessionID string) error
}
