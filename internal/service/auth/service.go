package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/arohak/timesheet-backend-go/internal/domain/approval"
	"github.com/arohak/timesheet-backend-go/internal/domain/auth"
	"github.com/arohak/timesheet-backend-go/internal/domain/user"
	"github.com/arohak/timesheet-backend-go/internal/pkg/database"
	"github.com/arohak/timesheet-backend-go/internal/pkg/jwt"
	"github.com/arohak/timesheet-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	approval.PendingUserRepository
	approval.PendingResetRepository
	jwt.Service
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, pendingUserRepository approval.PendingUserRepository, pendingResetRepository approval.PendingResetRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:                     db,
		UserRepository:         userRepository,
		PendingUserRepository:  pendingUserRepository,
		PendingResetRepository: pendingResetRepository,
		Service:                jwtService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Signup implements auth.AuthService. The account is not created here;
// it is staged in the pending queue until an administrator approves it.
func (a *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) error {
	exists, err := a.UserRepository.ExistsByEmpIDOrEmail(ctx, req.EmpID, req.Email)
	if err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	if exists {
		return user.ErrUserExists
	}

	pendingExists, err := a.PendingUserRepository.ExistsByEmpIDOrEmail(ctx, req.EmpID, req.Email)
	if err != nil {
		return fmt.Errorf("failed to check pending signups: %w", err)
	}
	if pendingExists {
		return approval.ErrSignupAlreadyPending
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = a.PendingUserRepository.Create(ctx, approval.PendingUser{
		EmpID:        req.EmpID,
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	})
	if err != nil {
		return err
	}

	return nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateToken(userData.ID, userData.EmpID, userData.Email, userData.Name, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// AdminLogin implements auth.AuthService. Admins authenticate by
// employee ID against a stored account; a matching non-admin account
// fails the same way as a wrong password.
func (a *AuthServiceImpl) AdminLogin(ctx context.Context, req auth.AdminLoginRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByEmpID(ctx, req.EmpID)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by emp id: %w", err)
	}

	if !userData.IsAdmin() {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateToken(userData.ID, userData.EmpID, userData.Email, userData.Name, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// RequestReset implements auth.AuthService. The token is minted here
// but only disclosed to the requester after an administrator approves
// the reset.
func (a *AuthServiceImpl) RequestReset(ctx context.Context, req auth.RequestResetRequest) error {
	userData, err := a.UserRepository.GetByEmpIDOrEmail(ctx, req.EmpID, req.Email)
	if err != nil {
		return err
	}

	token, err := newResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	_, err = a.PendingResetRepository.Create(ctx, approval.PendingReset{
		EmpID:  userData.EmpID,
		Email:  userData.Email,
		UserID: userData.ID,
		Token:  token,
	})
	if err != nil {
		return err
	}

	return nil
}

// ResetPassword implements auth.AuthService. The token is single-use:
// the password update and the pending-record deletion commit together.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	pending, err := a.PendingResetRepository.GetByToken(ctx, req.Token)
	if err != nil {
		if err == approval.ErrPendingResetNotFound {
			return auth.ErrInvalidResetToken
		}
		return fmt.Errorf("failed to get pending reset: %w", err)
	}

	if pending.IsExpired() {
		if err := a.PendingResetRepository.Delete(ctx, pending.ID); err != nil && err != approval.ErrPendingResetNotFound {
			return fmt.Errorf("failed to delete expired reset: %w", err)
		}
		return auth.ErrInvalidResetToken
	}

	hash, err := a.hashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := a.UserRepository.UpdatePassword(txCtx, pending.UserID, hash); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		if err := a.PendingResetRepository.Delete(txCtx, pending.ID); err != nil {
			return fmt.Errorf("failed to consume reset token: %w", err)
		}
		return nil
	})

	return err
}

// newResetToken returns 32 random bytes hex encoded.
func newResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
