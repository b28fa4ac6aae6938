package timesheet

import "time"

// Status is the overall state of a monthly timesheet.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

// LeaveStatus is the state of a single leave application.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// Timesheet is one employee-month of clock entries. There is at most one
// per (employee, month, year); resubmissions mutate it in place.
type Timesheet struct {
	ID            string
	EmployeeID    string
	EmployeeName  string
	EmployeeEmail string
	Month         string
	Year          int
	Days          []DayEntry
	ProjectDetail ProjectDetail
	LeaveApps     []LeaveApplication
	MonthlyTotal  float64
	Status        Status
	SubmittedAt   time.Time
}

// DayEntry is one calendar day's clock-in/out and derived duration.
// TotalLog is always recomputed server-side from ClockIn/ClockOut;
// client-supplied values are overwritten.
type DayEntry struct {
	Date        time.Time
	DateDisplay string
	ClockIn     string
	ClockOut    string
	WorkingLog  string
	TotalLog    string
	SubmittedAt time.Time
}

type ProjectDetail struct {
	Client  string
	Project string
	CWSCode string
}

type LeaveApplication struct {
	LeaveType string
	FromDate  time.Time
	ToDate    time.Time
	Reason    string
	Status    LeaveStatus
	AppliedAt time.Time
}
