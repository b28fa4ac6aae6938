package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/arohak/timesheet-backend-go/internal/domain/approval"
	"github.com/arohak/timesheet-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type pendingUserRepositoryImpl struct {
	db *database.DB
}

func NewPendingUserRepository(db *database.DB) approval.PendingUserRepository {
	return &pendingUserRepositoryImpl{db: db}
}

const pendingUserColumns = `id, emp_id, email, name, password_hash, created_at`

func scanPendingUser(row pgx.Row) (approval.PendingUser, error) {
	var p approval.PendingUser
	err := row.Scan(
		&p.ID,
		&p.EmpID,
		&p.Email,
		&p.Name,
		&p.PasswordHash,
		&p.CreatedAt,
	)
	return p, err
}

// Create implements approval.PendingUserRepository.
func (r *pendingUserRepositoryImpl) Create(ctx context.Context, pending approval.PendingUser) (approval.PendingUser, error) {
	q := GetQuerier(ctx, r.db)

	if pending.ID == "" {
		pending.ID = uuid.NewString()
	}

	query := `
		INSERT INTO pending_users (id, emp_id, email, name, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + pendingUserColumns

	created, err := scanPendingUser(q.QueryRow(ctx, query,
		pending.ID,
		pending.EmpID,
		pending.Email,
		pending.Name,
		pending.PasswordHash,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return approval.PendingUser{}, approval.ErrSignupAlreadyPending
		}
		return approval.PendingUser{}, err
	}

	return created, nil
}

// GetByID implements approval.PendingUserRepository.
func (r *pendingUserRepositoryImpl) GetByID(ctx context.Context, id string) (approval.PendingUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + pendingUserColumns + ` FROM pending_users WHERE id = $1`

	found, err := scanPendingUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return approval.PendingUser{}, approval.ErrPendingUserNotFound
		}
		return approval.PendingUser{}, err
	}

	return found, nil
}

// ExistsByEmpIDOrEmail implements approval.PendingUserRepository.
func (r *pendingUserRepositoryImpl) ExistsByEmpIDOrEmail(ctx context.Context, empID, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM pending_users WHERE emp_id = $1 OR email = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, empID, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// List implements approval.PendingUserRepository.
func (r *pendingUserRepositoryImpl) List(ctx context.Context) ([]approval.PendingUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + pendingUserColumns + ` FROM pending_users ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pending []approval.PendingUser
	for rows.Next() {
		p, err := scanPendingUser(rows)
		if err != nil {
			return nil, err
		}
		pending = append(pending, p)
	}

	return pending, rows.Err()
}

// Delete implements approval.PendingUserRepository.
func (r *pendingUserRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM pending_users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return approval.ErrPendingUserNotFound
	}
	return nil
}

// DeleteExpired implements approval.PendingUserRepository.
func (r *pendingUserRepositoryImpl) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM pending_users WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
