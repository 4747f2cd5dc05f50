package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/drosado/accounts-api/internal/api/metrics"
	"github.com/drosado/accounts-api/internal/core/domain"
	"github.com/drosado/accounts-api/internal/core/ports"
	"github.com/drosado/accounts-api/internal/infrastructure/security"
)

// BreachPolicy controls how registration uses the breach-strength check.
type BreachPolicy struct {
	// Enforce runs the check on every registration when true.
	Enforce bool
	// FailOpen admits the password when the breach service itself fails.
	// When false, an upstream failure rejects the registration.
	FailOpen bool
}

// dummyPassword seeds the hash verified on the unknown-email login branch.
const dummyPassword = "correct horse battery staple"

// AuthService orchestrates register, login and logout over the user store,
// the session service and the credential primitives.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionService
	hasher   ports.PasswordHasher
	strength ports.StrengthChecker
	policy   BreachPolicy
	log      zerolog.Logger

	// dummyHash is a real hash verified when login hits an unknown email,
	// so both login branches pay the same verification cost.
	dummyHash string
}

// NewAuthService wires the auth flow dependencies together.
func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionService,
	hasher ports.PasswordHasher,
	strength ports.StrengthChecker,
	policy BreachPolicy,
	log zerolog.Logger,
) *AuthService {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		log.Error().Err(err).Msg("dummy hash generation failed, unknown-email logins skip verification")
	}
	return &AuthService{
		users:     users,
		sessions:  sessions,
		hasher:    hasher,
		strength:  strength,
		policy:    policy,
		log:       log,
		dummyHash: dummyHash,
	}
}

// Register creates a user and issues a session for it.
//
// The password passes the breach-strength check per the configured policy
// before it is hashed. A duplicate email surfaces as domain.ErrEmailInUse.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, *ports.Credentials, error) {
	if s.policy.Enforce {
		ok, err := s.strength.CheckStrength(ctx, in.Password)
		if err != nil {
			if !s.policy.FailOpen {
				metrics.RegistrationsTotal.WithLabelValues("error").Inc()
				return nil, nil, err
			}
			s.log.Warn().Err(err).Msg("breach check unavailable, admitting password")
		} else if !ok {
			metrics.RegistrationsTotal.WithLabelValues("weak_password").Inc()
			return nil, nil, domain.ErrWeakPassword
		}
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, nil, err
	}

	user, err := s.users.Create(ctx, &domain.User{
		Name:         in.Name,
		Document:     in.Document,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if err == domain.ErrEmailInUse || err == domain.ErrDocumentInUse {
			metrics.RegistrationsTotal.WithLabelValues("email_in_use").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return nil, nil, err
	}

	creds, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return user, creds, nil
}

// Login verifies credentials and issues a session.
//
// An unknown email and a wrong password both yield domain.ErrInvalidCredentials;
// hash verification runs either way so the two cases stay indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *ports.Credentials, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil && err != domain.ErrUserNotFound {
		return nil, nil, err
	}

	storedHash := s.dummyHash
	if user != nil {
		storedHash = user.PasswordHash
	}

	if !s.hasher.Verify(password, storedHash) || user == nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, nil, domain.ErrInvalidCredentials
	}

	creds, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return user, creds, nil
}

// Logout invalidates the session row.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Invalidate(ctx, sessionID)
}

func (s *AuthService) issueSession(ctx context.Context, userID int64) (*ports.Credentials, error) {
	token, err := security.NewToken()
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Create(ctx, token, userID)
	if err != nil {
		return nil, err
	}

	return &ports.Credentials{Token: token, Session: session}, nil
}
