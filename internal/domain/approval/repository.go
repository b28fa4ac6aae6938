package approval

import (
	"context"
	"time"
)

// PendingUserRepository defines the interface for staged-signup data
// access. Create maps unique-constraint violations on emp_id or email to
// ErrSignupAlreadyPending; lookups and deletes map missing rows to
// ErrPendingUserNotFound.
type PendingUserRepository interface {
	Create(ctx context.Context, pending PendingUser) (PendingUser, error)
	GetByID(ctx context.Context, id string) (PendingUser, error)
	ExistsByEmpIDOrEmail(ctx context.Context, empID, email string) (bool, error)

	// List returns pending signups, newest first.
	List(ctx context.Context) ([]PendingUser, error)

	Delete(ctx context.Context, id string) error

	// DeleteExpired removes records created before the cutoff and returns
	// how many were swept.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// PendingResetRepository defines the interface for staged password-reset
// data access. Lookups and deletes map missing rows to
// ErrPendingResetNotFound.
type PendingResetRepository interface {
	Create(ctx context.Context, pending PendingReset) (PendingReset, error)
	GetByID(ctx context.Context, id string) (PendingReset, error)
	GetByToken(ctx context.Context, token string) (PendingReset, error)
	List(ctx context.Context) ([]PendingReset, error)
	Delete(ctx context.Context, id string) error
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
