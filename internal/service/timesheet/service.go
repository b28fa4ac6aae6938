package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arohak/timesheet-backend-go/internal/domain/employee"
	"github.com/arohak/timesheet-backend-go/internal/domain/timesheet"
	"github.com/arohak/timesheet-backend-go/internal/pkg/database"
	"github.com/arohak/timesheet-backend-go/internal/pkg/timeclock"
	"github.com/arohak/timesheet-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// recentMonths caps the history returned by the employee drill-down.
const recentMonths = 12

type TimesheetServiceImpl struct {
	db *database.DB
	timesheet.TimesheetRepository
	employee.EmployeeRepository
}

func NewTimesheetService(db *database.DB, timesheetRepository timesheet.TimesheetRepository, employeeRepository employee.EmployeeRepository) timesheet.Service {
	return &TimesheetServiceImpl{
		db:                  db,
		TimesheetRepository: timesheetRepository,
		EmployeeRepository:  employeeRepository,
	}
}

// Submit implements timesheet.Service. The month's header is upserted,
// each submitted day merges in by date key, and the monthly total is
// recomputed from the full merged day set, all in one transaction.
// Client-sent per-day and monthly totals are ignored.
func (s *TimesheetServiceImpl) Submit(ctx context.Context, req timesheet.SubmitRequest) (timesheet.Response, error) {
	header := timesheet.Timesheet{
		EmployeeID:    req.EmployeeID,
		EmployeeName:  req.EmployeeName,
		EmployeeEmail: req.EmployeeEmail,
		Month:         req.Month,
		Year:          req.Year,
		ProjectDetail: timesheet.ProjectDetail(req.ProjectDetail),
		Status:        timesheet.StatusSubmitted,
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		stored, err := s.TimesheetRepository.UpsertHeader(txCtx, header)
		if err != nil {
			return fmt.Errorf("failed to upsert timesheet: %w", err)
		}

		for _, dayReq := range req.Days {
			date, ok := parseDate(dayReq.Date)
			if !ok {
				continue
			}

			total, ok := timeclock.HoursBetween(dayReq.ClockIn, dayReq.ClockOut)
			if !ok {
				total = "0.00"
			}

			day := timesheet.DayEntry{
				Date:        date,
				DateDisplay: dayReq.DateDisplay,
				ClockIn:     dayReq.ClockIn,
				ClockOut:    dayReq.ClockOut,
				WorkingLog:  dayReq.WorkingLog,
				TotalLog:    total,
			}
			if err := s.TimesheetRepository.UpsertDay(txCtx, stored.ID, day); err != nil {
				return fmt.Errorf("failed to upsert day entry: %w", err)
			}
		}

		apps := make([]timesheet.LeaveApplication, 0, len(req.LeaveApps))
		for _, appReq := range req.LeaveApps {
			from, okFrom := parseDate(appReq.FromDate)
			to, okTo := parseDate(appReq.ToDate)
			if !okFrom || !okTo {
				continue
			}

			status := timesheet.LeaveStatus(appReq.Status)
			if status == "" {
				status = timesheet.LeavePending
			}

			apps = append(apps, timesheet.LeaveApplication{
				LeaveType: appReq.LeaveType,
				FromDate:  from,
				ToDate:    to,
				Reason:    appReq.Reason,
				Status:    status,
				AppliedAt: time.Now(),
			})
		}
		if err := s.TimesheetRepository.ReplaceLeaveApplications(txCtx, stored.ID, apps); err != nil {
			return fmt.Errorf("failed to replace leave applications: %w", err)
		}

		days, err := s.TimesheetRepository.GetDays(txCtx, stored.ID)
		if err != nil {
			return fmt.Errorf("failed to load merged days: %w", err)
		}

		totals := make([]string, 0, len(days))
		for _, d := range days {
			totals = append(totals, d.TotalLog)
		}
		if err := s.TimesheetRepository.UpdateMonthlyTotal(txCtx, stored.ID, timeclock.SumTotals(totals)); err != nil {
			return fmt.Errorf("failed to update monthly total: %w", err)
		}

		return nil
	})
	if err != nil {
		return timesheet.Response{}, err
	}

	stored, err := s.TimesheetRepository.GetByKey(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return timesheet.Response{}, err
	}

	return timesheet.ToResponse(stored), nil
}

// List implements timesheet.Service.
func (s *TimesheetServiceImpl) List(ctx context.Context, req timesheet.ListRequest) ([]timesheet.Response, error) {
	timesheets, err := s.TimesheetRepository.List(ctx, timesheet.ListFilter{
		Month:  req.Month,
		Year:   req.Year,
		Status: timesheet.Status(req.Status),
		Search: req.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}

	return timesheet.ToResponses(timesheets), nil
}

// EmployeeDetails implements timesheet.Service.
func (s *TimesheetServiceImpl) EmployeeDetails(ctx context.Context, empID string) (timesheet.EmployeeDetailsResponse, error) {
	emp, err := s.EmployeeRepository.GetByEmpID(ctx, empID)
	if err != nil {
		return timesheet.EmployeeDetailsResponse{}, err
	}

	recent, err := s.TimesheetRepository.ListByEmployee(ctx, emp.EmpID, recentMonths)
	if err != nil {
		return timesheet.EmployeeDetailsResponse{}, fmt.Errorf("failed to list employee timesheets: %w", err)
	}

	details := timesheet.EmployeeDetailsResponse{
		Employee:   timesheet.ToEmployeeResponse(emp),
		Timesheets: timesheet.ToResponses(recent),
	}

	now := time.Now()
	current, err := s.TimesheetRepository.GetByKey(ctx, emp.EmpID, now.Month().String(), now.Year())
	if err != nil {
		if !errors.Is(err, timesheet.ErrTimesheetNotFound) {
			return timesheet.EmployeeDetailsResponse{}, fmt.Errorf("failed to load current timesheet: %w", err)
		}
	} else {
		resp := timesheet.ToResponse(current)
		details.CurrentTimesheet = &resp
	}

	return details, nil
}

// ListEmployees implements timesheet.Service.
func (s *TimesheetServiceImpl) ListEmployees(ctx context.Context, search string) ([]timesheet.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	out := make([]timesheet.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		out = append(out, timesheet.ToEmployeeResponse(emp))
	}
	return out, nil
}

func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
