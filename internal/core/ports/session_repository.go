package ports

import (
	"context"
	"time"

	"github.com/drosado/accounts-api/internal/core/domain"
)

// SessionRepository is plain CRUD over the sessions table. Expiry and renewal
// decisions live in the session service, not here.
type SessionRepository interface {
	Insert(ctx context.Context, session *domain.Session) error

	// FindWithUser loads a session joined with its owning user.
	// Returns domain.ErrSessionNotFound when no row matches.
	FindWithUser(ctx context.Context, sessionID string) (*domain.Session, *domain.User, error)

	UpdateExpiry(ctx context.Context, sessionID string, expiresAt time.Time) error

	// Delete is idempotent: deleting an unknown ID is not an error.
	Delete(ctx context.Context, sessionID string) error
}
