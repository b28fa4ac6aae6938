package approval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/arohak/timesheet-backend-go/internal/domain/approval"
	"github.com/arohak/timesheet-backend-go/internal/domain/employee"
	"github.com/arohak/timesheet-backend-go/internal/domain/user"
	"github.com/arohak/timesheet-backend-go/internal/pkg/database"
	"github.com/arohak/timesheet-backend-go/internal/pkg/email"
	"github.com/arohak/timesheet-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type ApprovalServiceImpl struct {
	db *database.DB
	user.UserRepository
	approval.PendingUserRepository
	approval.PendingResetRepository
	employee.EmployeeRepository
	notifier    email.Notifier
	frontendURL string
}

func NewApprovalService(db *database.DB, userRepository user.UserRepository, pendingUserRepository approval.PendingUserRepository, pendingResetRepository approval.PendingResetRepository, employeeRepository employee.EmployeeRepository, notifier email.Notifier, frontendURL string) approval.Service {
	return &ApprovalServiceImpl{
		db:                     db,
		UserRepository:         userRepository,
		PendingUserRepository:  pendingUserRepository,
		PendingResetRepository: pendingResetRepository,
		EmployeeRepository:     employeeRepository,
		notifier:               notifier,
		frontendURL:            frontendURL,
	}
}

// ListPendingUsers implements approval.Service.
func (s *ApprovalServiceImpl) ListPendingUsers(ctx context.Context) ([]approval.PendingUserResponse, error) {
	pending, err := s.PendingUserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending users: %w", err)
	}

	out := make([]approval.PendingUserResponse, 0, len(pending))
	for _, p := range pending {
		if p.IsExpired() {
			continue
		}
		out = append(out, approval.PendingUserResponse{
			ID:        p.ID,
			EmpID:     p.EmpID,
			Email:     p.Email,
			Name:      p.Name,
			CreatedAt: p.CreatedAt,
		})
	}

	return out, nil
}

// ApproveUser implements approval.Service. The user account, the
// directory record and the pending-record deletion commit together. If
// the identity was taken while the request sat in the queue, the stale
// pending record is removed and the conflict reported.
func (s *ApprovalServiceImpl) ApproveUser(ctx context.Context, pendingID string) (approval.ApproveUserResponse, error) {
	pending, err := s.PendingUserRepository.GetByID(ctx, pendingID)
	if err != nil {
		return approval.ApproveUserResponse{}, err
	}

	if pending.IsExpired() {
		if err := s.PendingUserRepository.Delete(ctx, pending.ID); err != nil && !errors.Is(err, approval.ErrPendingUserNotFound) {
			return approval.ApproveUserResponse{}, fmt.Errorf("failed to delete expired signup: %w", err)
		}
		return approval.ApproveUserResponse{}, approval.ErrPendingUserNotFound
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.UserRepository.Create(txCtx, user.User{
			EmpID:        pending.EmpID,
			Email:        pending.Email,
			Name:         pending.Name,
			PasswordHash: pending.PasswordHash,
			Role:         user.RoleUser,
		})
		if err != nil {
			return err
		}

		_, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
			EmpID: pending.EmpID,
			Email: pending.Email,
			Name:  pending.Name,
		})
		if err != nil {
			return err
		}

		return s.PendingUserRepository.Delete(txCtx, pending.ID)
	})

	if err != nil {
		if errors.Is(err, user.ErrUserExists) {
			if delErr := s.PendingUserRepository.Delete(ctx, pending.ID); delErr != nil && !errors.Is(delErr, approval.ErrPendingUserNotFound) {
				slog.Error("failed to clean up conflicting signup", "pending_id", pending.ID, "error", delErr)
			}
		}
		return approval.ApproveUserResponse{}, err
	}

	if err := s.notifier.SendApprovalNotice(created.Email, created.Name); err != nil {
		slog.Error("failed to send approval notice", "email", created.Email, "error", err)
	}

	return approval.ApproveUserResponse{
		UserID: created.ID,
		EmpID:  created.EmpID,
		Email:  created.Email,
		Name:   created.Name,
	}, nil
}

// RejectUser implements approval.Service.
func (s *ApprovalServiceImpl) RejectUser(ctx context.Context, pendingID string) (approval.RejectedResponse, error) {
	pending, err := s.PendingUserRepository.GetByID(ctx, pendingID)
	if err != nil {
		return approval.RejectedResponse{}, err
	}

	if err := s.PendingUserRepository.Delete(ctx, pending.ID); err != nil {
		return approval.RejectedResponse{}, err
	}

	return approval.RejectedResponse{EmpID: pending.EmpID, Email: pending.Email}, nil
}

// ListPendingResets implements approval.Service.
func (s *ApprovalServiceImpl) ListPendingResets(ctx context.Context) ([]approval.PendingResetResponse, error) {
	pending, err := s.PendingResetRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending resets: %w", err)
	}

	out := make([]approval.PendingResetResponse, 0, len(pending))
	for _, p := range pending {
		if p.IsExpired() {
			continue
		}
		out = append(out, approval.PendingResetResponse{
			ID:        p.ID,
			EmpID:     p.EmpID,
			Email:     p.Email,
			CreatedAt: p.CreatedAt,
		})
	}

	return out, nil
}

// ApproveReset implements approval.Service. The pending record stays
// until the requester completes the reset, so approving twice re-sends
// the same link.
func (s *ApprovalServiceImpl) ApproveReset(ctx context.Context, pendingID string) (approval.ApproveResetResponse, error) {
	pending, err := s.PendingResetRepository.GetByID(ctx, pendingID)
	if err != nil {
		return approval.ApproveResetResponse{}, err
	}

	if pending.IsExpired() {
		if err := s.PendingResetRepository.Delete(ctx, pending.ID); err != nil && !errors.Is(err, approval.ErrPendingResetNotFound) {
			return approval.ApproveResetResponse{}, fmt.Errorf("failed to delete expired reset: %w", err)
		}
		return approval.ApproveResetResponse{}, approval.ErrPendingResetNotFound
	}

	resetURL := fmt.Sprintf("%s/login?token=%s&action=reset", s.frontendURL, pending.Token)
	expiresAt := pending.CreatedAt.Add(approval.PendingTTL).Format(time.RFC1123)

	if err := s.notifier.SendResetLink(pending.Email, resetURL, expiresAt); err != nil {
		slog.Error("failed to send reset link", "email", pending.Email, "error", err)
	}

	return approval.ApproveResetResponse{
		PendingID: pending.ID,
		EmpID:     pending.EmpID,
		Email:     pending.Email,
		Token:     pending.Token,
		ResetURL:  resetURL,
	}, nil
}

// DeleteReset implements approval.Service.
func (s *ApprovalServiceImpl) DeleteReset(ctx context.Context, pendingID string) error {
	return s.PendingResetRepository.Delete(ctx, pendingID)
}

// RevokeUser implements approval.Service. Pending resets pointing at
// the user go with it via the store's cascade.
func (s *ApprovalServiceImpl) RevokeUser(ctx context.Context, empID string) (approval.RejectedResponse, error) {
	deleted, err := s.UserRepository.DeleteByEmpID(ctx, empID)
	if err != nil {
		return approval.RejectedResponse{}, err
	}

	return approval.RejectedResponse{EmpID: deleted.EmpID, Email: deleted.Email}, nil
}

// ListUsers implements approval.Service.
func (s *ApprovalServiceImpl) ListUsers(ctx context.Context, search string) ([]user.Response, error) {
	users, err := s.UserRepository.List(ctx, user.RoleUser, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return user.ToResponses(users), nil
}

// GetUserByEmpID implements approval.Service.
func (s *ApprovalServiceImpl) GetUserByEmpID(ctx context.Context, empID string) (user.Response, error) {
	found, err := s.UserRepository.GetByEmpID(ctx, empID)
	if err != nil {
		return user.Response{}, err
	}
	return user.ToResponse(found), nil
}
