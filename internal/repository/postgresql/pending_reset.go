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

type pendingResetRepositoryImpl struct {
	db *database.DB
}

func NewPendingResetRepository(db *database.DB) approval.PendingResetRepository {
	return &pendingResetRepositoryImpl{db: db}
}

const pendingResetColumns = `id, emp_id, email, user_id, token, created_at`

func scanPendingReset(row pgx.Row) (approval.PendingReset, error) {
	var p approval.PendingReset
	err := row.Scan(
		&p.ID,
		&p.EmpID,
		&p.Email,
		&p.UserID,
		&p.Token,
		&p.CreatedAt,
	)
	return p, err
}

// Create implements approval.PendingResetRepository.
func (r *pendingResetRepositoryImpl) Create(ctx context.Context, pending approval.PendingReset) (approval.PendingReset, error) {
	q := GetQuerier(ctx, r.db)

	if pending.ID == "" {
		pending.ID = uuid.NewString()
	}

	query := `
		INSERT INTO pending_resets (id, emp_id, email, user_id, token)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + pendingResetColumns

	created, err := scanPendingReset(q.QueryRow(ctx, query,
		pending.ID,
		pending.EmpID,
		pending.Email,
		pending.UserID,
		pending.Token,
	))
	if err != nil {
		return approval.PendingReset{}, err
	}

	return created, nil
}

// GetByID implements approval.PendingResetRepository.
func (r *pendingResetRepositoryImpl) GetByID(ctx context.Context, id string) (approval.PendingReset, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + pendingResetColumns + ` FROM pending_resets WHERE id = $1`

	found, err := scanPendingReset(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return approval.PendingReset{}, approval.ErrPendingResetNotFound
		}
		return approval.PendingReset{}, err
	}

	return found, nil
}

// GetByToken implements approval.PendingResetRepository.
func (r *pendingResetRepositoryImpl) GetByToken(ctx context.Context, token string) (approval.PendingReset, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + pendingResetColumns + ` FROM pending_resets WHERE token = $1`

	found, err := scanPendingReset(q.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return approval.PendingReset{}, approval.ErrPendingResetNotFound
		}
		return approval.PendingReset{}, err
	}

	return found, nil
}

// List implements approval.PendingResetRepository.
func (r *pendingResetRepositoryImpl) List(ctx context.Context) ([]approval.PendingReset, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + pendingResetColumns + ` FROM pending_resets ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pending []approval.PendingReset
	for rows.Next() {
		p, err := scanPendingReset(rows)
		if err != nil {
			return nil, err
		}
		pending = append(pending, p)
	}

	return pending, rows.Err()
}

// Delete implements approval.PendingResetRepository.
func (r *pendingResetRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM pending_resets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return approval.ErrPendingResetNotFound
	}
	return nil
}

// DeleteByToken implements approval.PendingResetRepository.
func (r *pendingResetRepositoryImpl) DeleteByToken(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM pending_resets WHERE token = $1`, token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return approval.ErrPendingResetNotFound
	}
	return nil
}

// DeleteExpired implements approval.PendingResetRepository.
func (r *pendingResetRepositoryImpl) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM pending_resets WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
