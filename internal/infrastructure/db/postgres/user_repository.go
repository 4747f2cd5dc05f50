package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/drosado/accounts-api/internal/core/domain"
)

// UserRepository persists users in PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a UserRepository over the given pool.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts the user and fills in the generated ID. Unique violations on
// email or document map to their domain errors.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, document, email, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, user.Name, user.Document, user.Email, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if strings.Contains(constraint, "document") {
				return nil, domain.ErrDocumentInUse
			}
			return nil, domain.ErrEmailInUse
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

// FindByEmail loads a user by email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, document, email, password
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Name, &u.Document, &u.Email, &u.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &u, nil
}

// uniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505) and names the violated constraint.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}
