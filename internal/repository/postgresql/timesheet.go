package postgresql

import (
	"context"
	"errors"
	"strconv"

	"github.com/arohak/timesheet-backend-go/internal/domain/timesheet"
	"github.com/arohak/timesheet-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

const timesheetColumns = `id, employee_id, employee_name, employee_email, month, year,
	client, project, cws_code, monthly_total, status, submitted_at`

func scanTimesheet(row pgx.Row) (timesheet.Timesheet, error) {
	var ts timesheet.Timesheet
	err := row.Scan(
		&ts.ID,
		&ts.EmployeeID,
		&ts.EmployeeName,
		&ts.EmployeeEmail,
		&ts.Month,
		&ts.Year,
		&ts.ProjectDetail.Client,
		&ts.ProjectDetail.Project,
		&ts.ProjectDetail.CWSCode,
		&ts.MonthlyTotal,
		&ts.Status,
		&ts.SubmittedAt,
	)
	return ts, err
}

// UpsertHeader implements timesheet.TimesheetRepository. The
// (employee_id, month, year) unique index is the upsert key; existing
// day entries are left alone so they can be merged by date afterwards.
func (r *timesheetRepositoryImpl) UpsertHeader(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	if ts.ID == "" {
		ts.ID = uuid.NewString()
	}

	query := `
		INSERT INTO timesheets (id, employee_id, employee_name, employee_email, month, year,
			client, project, cws_code, monthly_total, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			employee_name = EXCLUDED.employee_name,
			employee_email = EXCLUDED.employee_email,
			client = EXCLUDED.client,
			project = EXCLUDED.project,
			cws_code = EXCLUDED.cws_code,
			status = EXCLUDED.status,
			submitted_at = NOW()
		RETURNING ` + timesheetColumns

	stored, err := scanTimesheet(q.QueryRow(ctx, query,
		ts.ID,
		ts.EmployeeID,
		ts.EmployeeName,
		ts.EmployeeEmail,
		ts.Month,
		ts.Year,
		ts.ProjectDetail.Client,
		ts.ProjectDetail.Project,
		ts.ProjectDetail.CWSCode,
		ts.MonthlyTotal,
		ts.Status,
	))
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	return stored, nil
}

// UpsertDay implements timesheet.TimesheetRepository. Merge key is
// (timesheet_id, date): resubmitting a day replaces that day only.
func (r *timesheetRepositoryImpl) UpsertDay(ctx context.Context, timesheetID string, day timesheet.DayEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheet_days (id, timesheet_id, date, date_display, clock_in, clock_out,
			working_log, total_log, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (timesheet_id, date) DO UPDATE SET
			date_display = EXCLUDED.date_display,
			clock_in = EXCLUDED.clock_in,
			clock_out = EXCLUDED.clock_out,
			working_log = EXCLUDED.working_log,
			total_log = EXCLUDED.total_log,
			submitted_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		uuid.NewString(),
		timesheetID,
		day.Date,
		day.DateDisplay,
		day.ClockIn,
		day.ClockOut,
		day.WorkingLog,
		day.TotalLog,
	)
	return err
}

// GetDays implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetDays(ctx context.Context, timesheetID string) ([]timesheet.DayEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, date_display, clock_in, clock_out, working_log, total_log, submitted_at
		FROM timesheet_days
		WHERE timesheet_id = $1
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, timesheetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []timesheet.DayEntry
	for rows.Next() {
		var d timesheet.DayEntry
		if err := rows.Scan(
			&d.Date,
			&d.DateDisplay,
			&d.ClockIn,
			&d.ClockOut,
			&d.WorkingLog,
			&d.TotalLog,
			&d.SubmittedAt,
		); err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

// ReplaceLeaveApplications implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ReplaceLeaveApplications(ctx context.Context, timesheetID string, apps []timesheet.LeaveApplication) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM leave_applications WHERE timesheet_id = $1`, timesheetID); err != nil {
		return err
	}

	query := `
		INSERT INTO leave_applications (id, timesheet_id, leave_type, from_date, to_date, reason, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, app := range apps {
		if _, err := q.Exec(ctx, query,
			uuid.NewString(),
			timesheetID,
			app.LeaveType,
			app.FromDate,
			app.ToDate,
			app.Reason,
			app.Status,
			app.AppliedAt,
		); err != nil {
			return err
		}
	}

	return nil
}

// UpdateMonthlyTotal implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) UpdateMonthlyTotal(ctx context.Context, timesheetID string, total float64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE timesheets SET monthly_total = $1 WHERE id = $2`, total, timesheetID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}
	return nil
}

// GetByKey implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByKey(ctx context.Context, employeeID, month string, year int) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets
		WHERE employee_id = $1 AND month = $2 AND year = $3
	`

	ts, err := scanTimesheet(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, err
	}

	if err := r.loadChildren(ctx, &ts); err != nil {
		return timesheet.Timesheet{}, err
	}

	return ts, nil
}

// List implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) List(ctx context.Context, filter timesheet.ListFilter) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timesheetColumns + ` FROM timesheets WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.Month != "" && filter.Year != 0 {
		args = append(args, filter.Month)
		query += ` AND month = $` + strconv.Itoa(len(args))
		args = append(args, filter.Year)
		query += ` AND year = $` + strconv.Itoa(len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		query += ` AND (employee_id ILIKE $` + n + ` OR employee_name ILIKE $` + n + ` OR employee_email ILIKE $` + n + `)`
	}
	query += ` ORDER BY submitted_at DESC`

	return r.queryTimesheets(ctx, q, query, args...)
}

// ListByEmployee implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets
		WHERE employee_id = $1
		ORDER BY year DESC, submitted_at DESC
		LIMIT $2
	`

	return r.queryTimesheets(ctx, q, query, employeeID, limit)
}

func (r *timesheetRepositoryImpl) queryTimesheets(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]timesheet.Timesheet, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var timesheets []timesheet.Timesheet
	for rows.Next() {
		ts, err := scanTimesheet(rows)
		if err != nil {
			return nil, err
		}
		timesheets = append(timesheets, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range timesheets {
		if err := r.loadChildren(ctx, &timesheets[i]); err != nil {
			return nil, err
		}
	}

	return timesheets, nil
}

func (r *timesheetRepositoryImpl) loadChildren(ctx context.Context, ts *timesheet.Timesheet) error {
	days, err := r.GetDays(ctx, ts.ID)
	if err != nil {
		return err
	}
	ts.Days = days

	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `
		SELECT leave_type, from_date, to_date, reason, status, applied_at
		FROM leave_applications
		WHERE timesheet_id = $1
		ORDER BY applied_at ASC
	`, ts.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	var apps []timesheet.LeaveApplication
	for rows.Next() {
		var a timesheet.LeaveApplication
		if err := rows.Scan(
			&a.LeaveType,
			&a.FromDate,
			&a.ToDate,
			&a.Reason,
			&a.Status,
			&a.AppliedAt,
		); err != nil {
			return err
		}
		apps = append(apps, a)
	}
	ts.LeaveApps = apps

	return rows.Err()
}
