package timesheet

import (
	"time"

	"github.com/arohak/timesheet-backend-go/internal/domain/employee"
	"github.com/arohak/timesheet-backend-go/internal/pkg/validator"
)

type DayEntryRequest struct {
	Date        string `json:"date"`
	DateDisplay string `json:"dateDisplay"`
	ClockIn     string `json:"clockIn"`
	ClockOut    string `json:"clockOut"`
	WorkingLog  string `json:"workingLog"`
	// TotalLog from the client is a display preview only; the server
	// recomputes it and the recomputed value wins.
	TotalLog string `json:"totalLog"`
}

type ProjectDetailRequest struct {
	Client  string `json:"client"`
	Project string `json:"project"`
	CWSCode string `json:"cwsCode"`
}

type LeaveApplicationRequest struct {
	LeaveType string `json:"leaveType"`
	FromDate  string `json:"fromDate"`
	ToDate    string `json:"toDate"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
}

type SubmitRequest struct {
	EmployeeID    string                    `json:"employeeId"`
	EmployeeName  string                    `json:"employeeName"`
	EmployeeEmail string                    `json:"employeeEmail"`
	Month         string                    `json:"month"`
	Year          int                       `json:"year"`
	Days          []DayEntryRequest         `json:"days"`
	ProjectDetail ProjectDetailRequest      `json:"projectDetails"`
	LeaveApps     []LeaveApplicationRequest `json:"leaveApplications"`
	MonthlyTotal  float64                   `json:"monthlyTotal"`
}

var leaveStatuses = []string{
	string(LeavePending), string(LeaveApproved), string(LeaveRejected),
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeName",
			Message: "employeeName is required",
		})
	}

	if validator.IsEmpty(r.EmployeeEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeEmail",
			Message: "employeeEmail is required",
		})
	} else if !validator.IsValidEmail(r.EmployeeEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeEmail",
			Message: "employeeEmail format is invalid",
		})
	}

	if !validator.IsValidMonthName(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be a full month name",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	for i, day := range r.Days {
		if _, ok := parseDate(day.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "days[" + validator.Itoa(i) + "].date",
				Message: "date must be YYYY-MM-DD or RFC3339",
			})
		}
	}

	for i, app := range r.LeaveApps {
		if validator.IsEmpty(app.LeaveType) {
			errs = append(errs, validator.ValidationError{
				Field:   "leaveApplications[" + validator.Itoa(i) + "].leaveType",
				Message: "leaveType is required",
			})
		}
		if _, ok := parseDate(app.FromDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "leaveApplications[" + validator.Itoa(i) + "].fromDate",
				Message: "fromDate must be YYYY-MM-DD or RFC3339",
			})
		}
		if _, ok := parseDate(app.ToDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "leaveApplications[" + validator.Itoa(i) + "].toDate",
				Message: "toDate must be YYYY-MM-DD or RFC3339",
			})
		}
		if !validator.IsEmpty(app.Status) && !validator.IsInSlice(app.Status, leaveStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "leaveApplications[" + validator.Itoa(i) + "].status",
				Message: "status must be pending, approved or rejected",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// parseDate accepts the two shapes clients actually send: a bare day or
// a full RFC3339 timestamp.
func parseDate(s string) (time.Time, bool) {
	if t, ok := validator.IsValidDate(s); ok {
		return t, true
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type ListRequest struct {
	Month  string
	Year   int
	Status string
	Search string
}

func (r *ListRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.Month) && !validator.IsValidMonthName(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be a full month name",
		})
	}

	statuses := []string{
		string(StatusDraft), string(StatusSubmitted),
		string(StatusApproved), string(StatusRejected),
	}
	if !validator.IsEmpty(r.Status) && !validator.IsInSlice(r.Status, statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be draft, submitted, approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayEntryResponse struct {
	Date        string `json:"date"`
	DateDisplay string `json:"dateDisplay"`
	ClockIn     string `json:"clockIn"`
	ClockOut    string `json:"clockOut"`
	WorkingLog  string `json:"workingLog"`
	TotalLog    string `json:"totalLog"`
	SubmittedAt string `json:"submittedAt"`
}

type ProjectDetailResponse struct {
	Client  string `json:"client"`
	Project string `json:"project"`
	CWSCode string `json:"cwsCode"`
}

type LeaveApplicationResponse struct {
	LeaveType string `json:"leaveType"`
	FromDate  string `json:"fromDate"`
	ToDate    string `json:"toDate"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
	AppliedAt string `json:"appliedAt"`
}

type Response struct {
	ID            string                     `json:"id"`
	EmployeeID    string                     `json:"employeeId"`
	EmployeeName  string                     `json:"employeeName"`
	EmployeeEmail string                     `json:"employeeEmail"`
	Month         string                     `json:"month"`
	Year          int                        `json:"year"`
	Days          []DayEntryResponse         `json:"days"`
	ProjectDetail ProjectDetailResponse      `json:"projectDetails"`
	LeaveApps     []LeaveApplicationResponse `json:"leaveApplications"`
	MonthlyTotal  float64                    `json:"monthlyTotal"`
	Status        string                     `json:"status"`
	SubmittedAt   string                     `json:"submittedAt"`
}

func ToResponse(ts Timesheet) Response {
	days := make([]DayEntryResponse, 0, len(ts.Days))
	for _, d := range ts.Days {
		days = append(days, DayEntryResponse{
			Date:        d.Date.Format("2006-01-02"),
			DateDisplay: d.DateDisplay,
			ClockIn:     d.ClockIn,
			ClockOut:    d.ClockOut,
			WorkingLog:  d.WorkingLog,
			TotalLog:    d.TotalLog,
			SubmittedAt: d.SubmittedAt.Format(time.RFC3339),
		})
	}

	apps := make([]LeaveApplicationResponse, 0, len(ts.LeaveApps))
	for _, a := range ts.LeaveApps {
		apps = append(apps, LeaveApplicationResponse{
			LeaveType: a.LeaveType,
			FromDate:  a.FromDate.Format("2006-01-02"),
			ToDate:    a.ToDate.Format("2006-01-02"),
			Reason:    a.Reason,
			Status:    string(a.Status),
			AppliedAt: a.AppliedAt.Format(time.RFC3339),
		})
	}

	return Response{
		ID:            ts.ID,
		EmployeeID:    ts.EmployeeID,
		EmployeeName:  ts.EmployeeName,
		EmployeeEmail: ts.EmployeeEmail,
		Month:         ts.Month,
		Year:          ts.Year,
		Days:          days,
		ProjectDetail: ProjectDetailResponse(ts.ProjectDetail),
		LeaveApps:     apps,
		MonthlyTotal:  ts.MonthlyTotal,
		Status:        string(ts.Status),
		SubmittedAt:   ts.SubmittedAt.Format(time.RFC3339),
	}
}

func ToResponses(timesheets []Timesheet) []Response {
	out := make([]Response, 0, len(timesheets))
	for _, ts := range timesheets {
		out = append(out, ToResponse(ts))
	}
	return out
}

type EmployeeResponse struct {
	EmpID      string `json:"empId"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	JoinDate   string `json:"joinDate"`
	IsActive   bool   `json:"isActive"`
}

func ToEmployeeResponse(emp employee.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmpID:      emp.EmpID,
		Email:      emp.Email,
		Name:       emp.Name,
		Department: emp.Department,
		Position:   emp.Position,
		JoinDate:   emp.JoinDate.Format("2006-01-02"),
		IsActive:   emp.IsActive,
	}
}

// EmployeeDetailsResponse is the admin drill-down view: the directory
// record, recent history, and the current month if it exists.
type EmployeeDetailsResponse struct {
	Employee         EmployeeResponse `json:"employee"`
	Timesheets       []Response       `json:"timesheets"`
	CurrentTimesheet *Response        `json:"currentTimesheet"`
}
