package approval

import (
	"context"

	"github.com/arohak/timesheet-backend-go/internal/domain/user"
)

// Service is the administrator side of the approval workflow: the two
// pending-request queues plus the user directory operations that hang
// off them. Every pending item moves pending -> approved/rejected/expired
// and never leaves a terminal state.
type Service interface {
	ListPendingUsers(ctx context.Context) ([]PendingUserResponse, error)

	// ApproveUser converts a staged signup into a user and an employee
	// directory record in one transaction. If a user with the same emp_id
	// or email already exists the pending record is deleted and
	// user.ErrUserExists is returned (self-healing a lost race).
	ApproveUser(ctx context.Context, pendingID string) (ApproveUserResponse, error)

	RejectUser(ctx context.Context, pendingID string) (RejectedResponse, error)

	ListPendingResets(ctx context.Context) ([]PendingResetResponse, error)

	// ApproveReset discloses the reset link for the notifier; it does not
	// consume the pending record.
	ApproveReset(ctx context.Context, pendingID string) (ApproveResetResponse, error)

	DeleteReset(ctx context.Context, pendingID string) error

	// RevokeUser deletes a user outright; pending resets referencing the
	// user are cascade-deleted by the store.
	RevokeUser(ctx context.Context, empID string) (RejectedResponse, error)

	ListUsers(ctx context.Context, search string) ([]user.Response, error)
	GetUserByEmpID(ctx context.Context, empID string) (user.Response, error)
}
