package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when the admin login fails.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized represents a missing, invalid or expired session.
	ErrUnauthorized = errors.New("unauthorized")
)
