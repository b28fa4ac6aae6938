package employee

import "context"

// EmployeeRepository defines the interface for employee directory data
// access. Lookups map missing rows to ErrEmployeeNotFound.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByEmpID(ctx context.Context, empID string) (Employee, error)

	// List returns active employees ordered by emp_id. A non-empty search
	// matches emp_id, name and email as a case-insensitive substring.
	List(ctx context.Context, search string) ([]Employee, error)
}
