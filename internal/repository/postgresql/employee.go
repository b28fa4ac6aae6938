package postgresql

import (
	"context"
	"errors"

	"github.com/arohak/timesheet-backend-go/internal/domain/employee"
	"github.com/arohak/timesheet-backend-go/internal/domain/user"
	"github.com/arohak/timesheet-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, emp_id, email, name, department, position, join_date, is_active, created_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.EmpID,
		&e.Email,
		&e.Name,
		&e.Department,
		&e.Position,
		&e.JoinDate,
		&e.IsActive,
		&e.CreatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository. Re-approving an
// identity that already has a directory record reactivates it instead
// of failing; a clash on email alone is a real identity conflict.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (id, emp_id, email, name, department, position, join_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), TRUE)
		ON CONFLICT (emp_id) DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			is_active = TRUE
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID,
		emp.EmpID,
		emp.Email,
		emp.Name,
		emp.Department,
		emp.Position,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, user.ErrUserExists
		}
		return employee.Employee{}, err
	}

	return created, nil
}

// GetByEmpID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE emp_id = $1`

	found, err := scanEmployee(q.QueryRow(ctx, query, empID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return found, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, search string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE is_active = TRUE`
	args := []interface{}{}

	if search != "" {
		query += ` AND (emp_id ILIKE $1 OR name ILIKE $1 OR email ILIKE $1)`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY emp_id ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}
