package domain

import "errors"

var (
	// ErrEmailInUse is returned when registering an email that already has an account.
	ErrEmailInUse = errors.New("email already in use")
	// ErrDocumentInUse is returned when registering a document identifier that is already taken.
	ErrDocumentInUse = errors.New("document already in use")
	// ErrInvalidCredentials is returned on login failure. It deliberately does not
	// distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrWeakPassword is returned when a password fails the breach-strength check.
	ErrWeakPassword = errors.New("password is too weak or has been exposed in a data breach")
	// ErrUnauthorized is returned when a request carries no valid session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAlreadyAuthenticated is returned when a guest-only route receives a valid session.
	ErrAlreadyAuthenticated = errors.New("already logged in")
	// ErrUserNotFound is returned by repositories when no user matches.
	ErrUserNotFound = errors.New("user not found")
	// ErrSessionNotFound is returned by repositories when no session matches.
	ErrSessionNotFound = errors.New("session not found")
)
