package ports

import (
	"context"

	"github.com/drosado/accounts-api/internal/core/domain"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// Create inserts the user and returns it with the generated ID set.
	// Unique-constraint violations surface as domain.ErrEmailInUse or
	// domain.ErrDocumentInUse.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByEmail returns domain.ErrUserNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
