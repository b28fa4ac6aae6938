package auth

import "context"

// AuthService covers the self-service side: staging a signup, logging
// in, and the two ends of the password-reset flow.
type AuthService interface {
	// Signup stages a pending signup for administrator approval. The
	// password is hashed here, before the record is stored.
	Signup(ctx context.Context, req SignupRequest) error

	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// AdminLogin authenticates a stored administrator account by employee
	// ID. Non-admin accounts fail with ErrInvalidCredentials.
	AdminLogin(ctx context.Context, req AdminLoginRequest) (TokenResponse, error)

	// RequestReset stages a password-reset request carrying a fresh
	// single-use token.
	RequestReset(ctx context.Context, req RequestResetRequest) error

	// ResetPassword consumes a reset token: the password update and the
	// pending-record deletion happen in one transaction.
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}
