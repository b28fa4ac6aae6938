package employee

import "time"

// Employee is the directory record behind a user account. It is created
// when a signup is approved and survives account revocation, so past
// timesheets stay attributable.
type Employee struct {
	ID         string
	EmpID      string
	Email      string
	Name       string
	Department string
	Position   string
	JoinDate   time.Time
	IsActive   bool
	CreatedAt  time.Time
}
