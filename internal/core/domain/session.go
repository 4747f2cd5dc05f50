package domain

import "time"

// Session is the server-side record of an authenticated session.
//
// ID is the lowercase-hex SHA-256 of the opaque token held by the client.
// The raw token is never persisted: the store can only find a session by
// recomputing the hash from a presented token.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
