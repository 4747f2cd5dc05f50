package service

import (
	"context"
	"time"

	"github.com/drosado/accounts-api/internal/api/metrics"
	"github.com/drosado/accounts-api/internal/core/domain"
	"github.com/drosado/accounts-api/internal/core/ports"
	"github.com/drosado/accounts-api/internal/infrastructure/security"
)

const (
	// SessionTTL is the absolute lifetime of a freshly issued or renewed session.
	SessionTTL = 30 * 24 * time.Hour
	// RenewalWindow is the trailing part of the lifetime during which a
	// validation slides the expiry forward to now + SessionTTL.
	RenewalWindow = 15 * 24 * time.Hour
)

// SessionService owns the session lifecycle. Sessions are keyed by the
// SHA-256 of the client-held token; the raw token is never persisted.
type SessionService struct {
	repo ports.SessionRepository

	// now is a seam for tests exercising expiry and renewal timing.
	now func() time.Time
}

// NewSessionService constructs a SessionService over the given repository.
func NewSessionService(repo ports.SessionRepository) *SessionService {
	return &SessionService{repo: repo, now: time.Now}
}

// Create derives the session ID from token and persists a session expiring
// SessionTTL from now. Inserting for an unknown user surfaces the store's
// referential-integrity failure.
func (s *SessionService) Create(ctx context.Context, token string, userID int64) (*domain.Session, error) {
	session := &domain.Session{
		ID:        security.SessionIDFromToken(token),
		UserID:    userID,
		ExpiresAt: s.now().Add(SessionTTL),
	}

	if err := s.repo.Insert(ctx, session); err != nil {
		return nil, err
	}

	metrics.SessionsIssuedTotal.Inc()
	return session, nil
}

// Validate resolves token to its session and owning user.
//
// No matching row yields (nil, nil, nil). An expired row is deleted before
// returning (nil, nil, nil), so a second validation of the same token is
// equally empty. A live session validated inside the renewal window has its
// expiry slid forward to now + SessionTTL and persisted before returning.
//
// The renewal read-modify-write is deliberately not locked: two concurrent
// validations can only race to move the expiry forward.
func (s *SessionService) Validate(ctx context.Context, token string) (*domain.Session, *domain.User, error) {
	sessionID := security.SessionIDFromToken(token)

	session, user, err := s.repo.FindWithUser(ctx, sessionID)
	if err == domain.ErrSessionNotFound {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	now := s.now()

	if !now.Before(session.ExpiresAt) {
		if err := s.repo.Delete(ctx, session.ID); err != nil {
			return nil, nil, err
		}
		metrics.SessionsEndedTotal.WithLabelValues("expired").Inc()
		return nil, nil, nil
	}

	if !now.Before(session.ExpiresAt.Add(-RenewalWindow)) {
		session.ExpiresAt = now.Add(SessionTTL)
		if err := s.repo.UpdateExpiry(ctx, session.ID, session.ExpiresAt); err != nil {
			return nil, nil, err
		}
		metrics.SessionsRenewedTotal.Inc()
	}

	return session, user, nil
}

// Invalidate deletes the session row. Unknown IDs are a no-op.
func (s *SessionService) Invalidate(ctx context.Context, sessionID string) error {
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return err
	}
	metrics.SessionsEndedTotal.WithLabelValues("logout").Inc()
	return nil
}
