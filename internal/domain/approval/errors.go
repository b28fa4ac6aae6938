package approval

import "errors"

var (
	ErrPendingUserNotFound  = errors.New("pending user not found")
	ErrPendingResetNotFound = errors.New("reset request not found")
	ErrSignupAlreadyPending = errors.New("signup request already pending")
)
