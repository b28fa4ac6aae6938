package timesheet

import "context"

// Service is the timesheet record store plus the admin views over it.
type Service interface {
	// Submit upserts the caller's month: per-day totals are recomputed
	// server-side, days merge by date key, leave applications are
	// replaced wholesale, and the monthly total is recomputed from the
	// merged day set. The whole submission is one transaction.
	Submit(ctx context.Context, req SubmitRequest) (Response, error)

	// List is the admin query over submitted timesheets.
	List(ctx context.Context, req ListRequest) ([]Response, error)

	// EmployeeDetails returns one employee's directory record, recent
	// timesheets and the current month.
	EmployeeDetails(ctx context.Context, empID string) (EmployeeDetailsResponse, error)

	// ListEmployees lists active employees for the admin dashboard.
	ListEmployees(ctx context.Context, search string) ([]EmployeeResponse, error)
}
