package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"fmt"
)

// tokenEncoding is base32 with a lowercase alphabet and no padding, so the
// token is safe to place in a cookie value as-is.
var tokenEncoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

const tokenBytes = 20

// NewToken returns an opaque session token: 20 bytes (160 bits) from the
// system CSPRNG, base32-lowercase encoded. Collisions are treated as
// cryptographically impossible.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return tokenEncoding.EncodeToString(b), nil
}

// SessionIDFromToken derives the persisted session identifier from a
// client-presented token: lowercase hex of SHA-256 over the token's bytes.
// Deterministic and one-way; the store never sees the raw token.
func SessionIDFromToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
