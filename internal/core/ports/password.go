package ports

import "context"

// PasswordHasher is a one-way, salted credential hasher producing
// self-describing hash strings safe to store directly.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A malformed hash is
	// simply a non-match, never an error.
	Verify(password, hash string) bool
}

// StrengthChecker decides whether a candidate password is acceptable,
// typically by consulting a breach database.
type StrengthChecker interface {
	// CheckStrength returns false when the password is out of bounds or known
	// to be compromised. A non-nil error reports an upstream failure; the
	// caller decides whether to fail open or closed.
	CheckStrength(ctx context.Context, password string) (bool, error)
}
