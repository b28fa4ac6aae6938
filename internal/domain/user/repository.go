package user

import "context"

// UserRepository defines the interface for user data access.
// Create maps a unique-constraint violation on emp_id or email to
// ErrUserExists; lookups map missing rows to ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByEmpID(ctx context.Context, empID string) (User, error)

	// GetByEmpIDOrEmail looks a user up by whichever key is non-empty.
	GetByEmpIDOrEmail(ctx context.Context, empID, email string) (User, error)

	ExistsByEmpIDOrEmail(ctx context.Context, empID, email string) (bool, error)

	// List returns users with the given role, newest first. A non-empty
	// search matches emp_id, name and email as a case-insensitive substring.
	List(ctx context.Context, role Role, search string) ([]User, error)

	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	DeleteByEmpID(ctx context.Context, empID string) (User, error)
}
