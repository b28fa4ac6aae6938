package timesheet

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/arohak/timesheet-backend-go/internal/domain/employee"
	"github.com/arohak/timesheet-backend-go/internal/domain/timesheet"
	"github.com/arohak/timesheet-backend-go/internal/pkg/database"
	"github.com/arohak/timesheet-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTimesheetDB *database.DB

func timesheetTestInit(t *testing.T) {
	if testTimesheetDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testTimesheetDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateTimesheetTables(t *testing.T, ctx context.Context) {
	tables := []string{"timesheet_days", "leave_applications", "timesheets", "employees"}

	for _, table := range tables {
		_, err := testTimesheetDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			continue
		}
	}
}

func newTimesheetService() timesheet.Service {
	timesheetRepo := postgresql.NewTimesheetRepository(testTimesheetDB)
	employeeRepo := postgresql.NewEmployeeRepository(testTimesheetDB)
	return NewTimesheetService(testTimesheetDB, timesheetRepo, employeeRepo)
}

func submitRequest(days []timesheet.DayEntryRequest) timesheet.SubmitRequest {
	return timesheet.SubmitRequest{
		EmployeeID:    "AT3001",
		EmployeeName:  "Sheet Person",
		EmployeeEmail: "sheets@example.com",
		Month:         "March",
		Year:          2025,
		Days:          days,
		ProjectDetail: timesheet.ProjectDetailRequest{
			Client:  "Acme",
			Project: "Rollout",
			CWSCode: "CWS-42",
		},
	}
}

func TestTimesheetService_Submit_RecomputesTotals(t *testing.T) {
	ctx := context.Background()
	timesheetTestInit(t)
	truncateTimesheetTables(t, ctx)

	svc := newTimesheetService()

	req := submitRequest([]timesheet.DayEntryRequest{
		{Date: "2025-03-03", ClockIn: "09:00 am", ClockOut: "05:30 pm", TotalLog: "99.99"},
		{Date: "2025-03-04", ClockIn: "10:00 pm", ClockOut: "06:00 am"},
	})
	req.MonthlyTotal = 1234.5 // ignored

	resp, err := svc.Submit(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.Days, 2)

	assert.Equal(t, "8.50", resp.Days[0].TotalLog)
	assert.Equal(t, "8.00", resp.Days[1].TotalLog) // overnight span
	assert.InDelta(t, 16.5, resp.MonthlyTotal, 0.001)
	assert.Equal(t, string(timesheet.StatusSubmitted), resp.Status)
}

func TestTimesheetService_Submit_MergesByDate(t *testing.T) {
	ctx := context.Background()
	timesheetTestInit(t)
	truncateTimesheetTables(t, ctx)

	svc := newTimesheetService()

	_, err := svc.Submit(ctx, submitRequest([]timesheet.DayEntryRequest{
		{Date: "2025-03-03", ClockIn: "09:00 am", ClockOut: "05:00 pm"},
		{Date: "2025-03-04", ClockIn: "09:00 am", ClockOut: "05:00 pm"},
	}))
	require.NoError(t, err)

	// Resubmission corrects one day and adds another; untouched days stay
	resp, err := svc.Submit(ctx, submitRequest([]timesheet.DayEntryRequest{
		{Date: "2025-03-04", ClockIn: "09:00 am", ClockOut: "06:00 pm"},
		{Date: "2025-03-05", ClockIn: "09:00 am", ClockOut: "01:00 pm"},
	}))
	require.NoError(t, err)

	require.Len(t, resp.Days, 3)
	assert.Equal(t, "2025-03-03", resp.Days[0].Date)
	assert.Equal(t, "8.00", resp.Days[0].TotalLog)
	assert.Equal(t, "9.00", resp.Days[1].TotalLog)
	assert.Equal(t, "4.00", resp.Days[2].TotalLog)
	assert.InDelta(t, 21.0, resp.MonthlyTotal, 0.001)

	// Still a single record for the month
	all, err := svc.List(ctx, timesheet.ListRequest{Month: "March", Year: 2025})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTimesheetService_Submit_UnparsableClockIsZero(t *testing.T) {
	ctx := context.Background()
	timesheetTestInit(t)
	truncateTimesheetTables(t, ctx)

	svc := newTimesheetService()

	resp, err := svc.Submit(ctx, submitRequest([]timesheet.DayEntryRequest{
		{Date: "2025-03-03", ClockIn: "garbage", ClockOut: "05:00 pm"},
		{Date: "2025-03-04", ClockIn: "09:00 am", ClockOut: "05:00 pm"},
	}))
	require.NoError(t, err)

	require.Len(t, resp.Days, 2)
	assert.Equal(t, "0.00", resp.Days[0].TotalLog)
	assert.InDelta(t, 8.0, resp.MonthlyTotal, 0.001)
}

func TestTimesheetService_Submit_ReplacesLeaveApplications(t *testing.T) {
	ctx := context.Background()
	timesheetTestInit(t)
	truncateTimesheetTables(t, ctx)

	svc := newTimesheetService()

	req := submitRequest(nil)
	req.LeaveApps = []timesheet.LeaveApplicationRequest{
		{LeaveType: "annual", FromDate: "2025-03-10", ToDate: "2025-03-12", Reason: "vacation"},
	}
	resp, err := svc.Submit(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.LeaveApps, 1)
	assert.Equal(t, string(timesheet.LeavePending), resp.LeaveApps[0].Status)

	req.LeaveApps = []timesheet.LeaveApplicationRequest{
		{LeaveType: "sick", FromDate: "2025-03-20", ToDate: "2025-03-21", Status: "approved"},
	}
	resp, err = svc.Submit(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.LeaveApps, 1)
	assert.Equal(t, "sick", resp.LeaveApps[0].LeaveType)
}

func TestTimesheetService_EmployeeDetails(t *testing.T) {
	ctx := context.Background()
	timesheetTestInit(t)
	truncateTimesheetTables(t, ctx)

	_, err := postgresql.NewEmployeeRepository(testTimesheetDB).Create(ctx, employee.Employee{
		EmpID: "AT3001",
		Email: "sheets@example.com",
		Name:  "Sheet Person",
	})
	require.NoError(t, err)

	svc := newTimesheetService()
	_, err = svc.Submit(ctx, submitRequest([]timesheet.DayEntryRequest{
		{Date: "2025-03-03", ClockIn: "09:00 am", ClockOut: "05:00 pm"},
	}))
	require.NoError(t, err)

	details, err := svc.EmployeeDetails(ctx, "AT3001")
	require.NoError(t, err)
	assert.Equal(t, "AT3001", details.Employee.EmpID)
	assert.Len(t, details.Timesheets, 1)

	_, err = svc.EmployeeDetails(ctx, "AT9999")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
