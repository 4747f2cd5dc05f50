package domain

// User models a registered account.
//
// PasswordHash is never serialized: profile responses marshal the domain
// value directly and rely on the `json:"-"` tag instead of scrubbing
// rendered payloads at runtime.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Document     string `json:"document"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
