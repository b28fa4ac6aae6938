package timesheet

import "context"

// ListFilter narrows the admin timesheet listing. Month and Year apply
// together; Search matches employee id/name/email case-insensitively.
type ListFilter struct {
	Month  string
	Year   int
	Status Status
	Search string
}

// TimesheetRepository defines the interface for timesheet data access.
// The header upsert and the per-day upsert are separate operations so
// the service can run them inside one transaction.
type TimesheetRepository interface {
	// UpsertHeader creates the month's record or updates it in place,
	// keyed by (employee_id, month, year), and returns the stored row.
	UpsertHeader(ctx context.Context, ts Timesheet) (Timesheet, error)

	// UpsertDay merges one day entry by its date key; an existing entry
	// for the same date is replaced, other days are untouched.
	UpsertDay(ctx context.Context, timesheetID string, day DayEntry) error

	GetDays(ctx context.Context, timesheetID string) ([]DayEntry, error)

	// ReplaceLeaveApplications swaps the full leave application list.
	ReplaceLeaveApplications(ctx context.Context, timesheetID string, apps []LeaveApplication) error

	UpdateMonthlyTotal(ctx context.Context, timesheetID string, total float64) error

	// GetByKey loads one timesheet with days and leave applications.
	GetByKey(ctx context.Context, employeeID, month string, year int) (Timesheet, error)

	// List returns filtered timesheets, newest submission first.
	List(ctx context.Context, filter ListFilter) ([]Timesheet, error)

	// ListByEmployee returns up to limit timesheets for one employee,
	// most recent month first.
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]Timesheet, error)
}
