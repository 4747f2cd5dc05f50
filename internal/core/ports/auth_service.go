package ports

import (
	"context"

	"github.com/drosado/accounts-api/internal/core/domain"
)

// RegisterInput carries the validated registration payload into the service layer.
type RegisterInput struct {
	Name     string
	Document string
	Email    string
	Password string
}

// Credentials is an issued session: the opaque token handed to the client and
// the persisted session row derived from it.
type Credentials struct {
	Token   string
	Session *domain.Session
}

// AuthService orchestrates the account flows: register, login, logout.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, *Credentials, error)
	Login(ctx context.Context, email, password string) (*domain.User, *Credentials, error)
	Logout(ctx context.Context, sessionID string) error
}
