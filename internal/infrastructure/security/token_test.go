package security

import (
	"strings"
	"testing"
)

func TestNewToken_Shape(t *testing.T) {
	token, err := NewToken()
	if err != nil {
		t.Fatalf("NewToken returned error: %v", err)
	}

	// 20 bytes → ceil(160/5) = 32 base32 characters, no padding.
	if len(token) != 32 {
		t.Fatalf("expected 32-character token, got %d (%q)", len(token), token)
	}
	for _, r := range token {
		if !strings.ContainsRune("abcdefghijklmnopqrstuvwxyz234567", r) {
			t.Fatalf("token %q contains %q outside the lowercase base32 alphabet", token, r)
		}
	}
}

func TestNewToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := NewToken()
		if err != nil {
			t.Fatalf("NewToken returned error: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token %q", token)
		}
		seen[token] = true
	}
}

func TestSessionIDFromToken(t *testing.T) {
	// Deterministic: same token, same ID.
	a := SessionIDFromToken("dummytoken")
	b := SessionIDFromToken("dummytoken")
	if a != b {
		t.Fatalf("same token produced different ids: %q vs %q", a, b)
	}

	// 256-bit hash → 64 lowercase hex chars.
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d (%q)", len(a), a)
	}
	if a != strings.ToLower(a) {
		t.Fatalf("session id %q is not lowercase", a)
	}

	// Known vector: sha256("dummytoken").
	const want = "6d481cb4b931981337347715b3e0b522f15fb0744c4d089fa4b92e8ddb9aff87"
	if a != want {
		t.Fatalf("unexpected digest: got %q, want %q", a, want)
	}

	if SessionIDFromToken("othertoken") == a {
		t.Fatalf("different tokens produced the same id")
	}
}
