package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/drosado/accounts-api/internal/core/domain"
)

// SessionRepository persists sessions in PostgreSQL.
type SessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a SessionRepository over the given pool.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// Insert persists a session row. A foreign-key violation (unknown user)
// surfaces as a plain store failure.
func (r *SessionRepository) Insert(ctx context.Context, session *domain.Session) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sessions (id, user_id, expires_at)
		VALUES ($1, $2, $3)
	`, session.ID, session.UserID, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// FindWithUser loads a session joined with its owning user.
func (r *SessionRepository) FindWithUser(ctx context.Context, sessionID string) (*domain.Session, *domain.User, error) {
	var (
		s domain.Session
		u domain.User
	)
	err := r.pool.QueryRow(ctx, `
		SELECT s.id, s.user_id, s.expires_at,
		       u.id, u.name, u.document, u.email, u.password
		FROM sessions s
		INNER JOIN users u ON u.id = s.user_id
		WHERE s.id = $1
	`, sessionID).Scan(
		&s.ID, &s.UserID, &s.ExpiresAt,
		&u.ID, &u.Name, &u.Document, &u.Email, &u.PasswordHash,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("find session: %w", err)
	}

	return &s, &u, nil
}

// UpdateExpiry persists a slid-forward expiry.
func (r *SessionRepository) UpdateExpiry(ctx context.Context, sessionID string, expiresAt time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE sessions
		SET expires_at = $2
		WHERE id = $1
	`, sessionID, expiresAt)
	if err != nil {
		return fmt.Errorf("update session expiry: %w", err)
	}
	return nil
}

// Delete removes a session row (idempotent).
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
