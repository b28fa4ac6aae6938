package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or missing token")

	// ErrInvalidResetToken covers both "never existed" and "expired and
	// auto-deleted" - the caller cannot tell them apart.
	ErrInvalidResetToken = errors.New("invalid or expired token")
)
