package auth

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/arohak/timesheet-backend-go/internal/domain/approval"
	"github.com/arohak/timesheet-backend-go/internal/domain/auth"
	"github.com/arohak/timesheet-backend-go/internal/domain/user"
	"github.com/arohak/timesheet-backend-go/internal/pkg/database"
	"github.com/arohak/timesheet-backend-go/internal/pkg/jwt"
	"github.com/arohak/timesheet-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testAuthDB *database.DB

const (
	testExpiration = "1h"
	testSecret     = "test-secret-key-for-jwt"
)

func authTestInit(t *testing.T) {
	if testAuthDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testAuthDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateAuthTables(t *testing.T, ctx context.Context) {
	tables := []string{"pending_resets", "pending_users", "timesheet_days", "leave_applications", "timesheets", "employees", "users"}

	for _, table := range tables {
		_, err := testAuthDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			continue
		}
	}
}

func createAuthTestUser(t *testing.T, ctx context.Context, empID, email, password string, role user.Role) user.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	created, err := postgresql.NewUserRepository(testAuthDB).Create(ctx, user.User{
		EmpID:        empID,
		Email:        email,
		Name:         "Test User",
		PasswordHash: string(hash),
		Role:         role,
	})
	require.NoError(t, err)
	return created
}

func newAuthService() auth.AuthService {
	userRepo := postgresql.NewUserRepository(testAuthDB)
	pendingUserRepo := postgresql.NewPendingUserRepository(testAuthDB)
	pendingResetRepo := postgresql.NewPendingResetRepository(testAuthDB)
	jwtSvc := jwt.NewJWTService(testSecret, testExpiration)
	return NewAuthService(testAuthDB, userRepo, pendingUserRepo, pendingResetRepo, jwtSvc)
}

func TestAuthService_Signup_StagesPending(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc := newAuthService()
	email := fmt.Sprintf("signup-%d@example.com", time.Now().UnixNano())

	err := svc.Signup(ctx, auth.SignupRequest{
		EmpID:    "AT1001",
		Email:    email,
		Password: "password123",
		Name:     "New Person",
	})
	require.NoError(t, err)

	// Staged, not yet a user
	_, err = postgresql.NewUserRepository(testAuthDB).GetByEmpID(ctx, "AT1001")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	pending, err := postgresql.NewPendingUserRepository(testAuthDB).List(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "AT1001", pending[0].EmpID)
	assert.NotEqual(t, "password123", pending[0].PasswordHash)
}

func TestAuthService_Signup_DuplicatePending(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc := newAuthService()
	req := auth.SignupRequest{
		EmpID:    "AT1002",
		Email:    "dup@example.com",
		Password: "password123",
		Name:     "Dup Person",
	}

	require.NoError(t, svc.Signup(ctx, req))
	err := svc.Signup(ctx, req)
	assert.ErrorIs(t, err, approval.ErrSignupAlreadyPending)
}

func TestAuthService_Signup_ExistingUser(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	createAuthTestUser(t, ctx, "AT1003", "taken@example.com", "password123", user.RoleUser)

	svc := newAuthService()
	err := svc.Signup(ctx, auth.SignupRequest{
		EmpID:    "AT1003",
		Email:    "other@example.com",
		Password: "password123",
		Name:     "Claimed ID",
	})
	assert.ErrorIs(t, err, user.ErrUserExists)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	createAuthTestUser(t, ctx, "AT1004", "login@example.com", "password123", user.RoleUser)
	svc := newAuthService()

	token, err := svc.Login(ctx, auth.LoginRequest{Email: "login@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
	assert.Greater(t, token.ExpiresAt, time.Now().Unix())

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "login@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_AdminLogin_RejectsNonAdmin(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	createAuthTestUser(t, ctx, "AT1005", "plain@example.com", "password123", user.RoleUser)
	createAuthTestUser(t, ctx, "AT0198", "admin@example.com", "admin-pass-1", user.RoleAdmin)
	svc := newAuthService()

	_, err := svc.AdminLogin(ctx, auth.AdminLoginRequest{EmpID: "AT1005", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	token, err := svc.AdminLogin(ctx, auth.AdminLoginRequest{EmpID: "AT0198", Password: "admin-pass-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
}

func TestAuthService_ResetFlow_TokenSingleUse(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	createAuthTestUser(t, ctx, "AT1006", "reset@example.com", "old-password", user.RoleUser)
	svc := newAuthService()

	require.NoError(t, svc.RequestReset(ctx, auth.RequestResetRequest{Email: "reset@example.com"}))

	pending, err := postgresql.NewPendingResetRepository(testAuthDB).List(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Len(t, pending[0].Token, 64)

	err = svc.ResetPassword(ctx, auth.ResetPasswordRequest{
		Token:       pending[0].Token,
		NewPassword: "new-password",
	})
	require.NoError(t, err)

	// Token is consumed
	err = svc.ResetPassword(ctx, auth.ResetPasswordRequest{
		Token:       pending[0].Token,
		NewPassword: "another-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidResetToken)

	// Only the new password works
	_, err = svc.Login(ctx, auth.LoginRequest{Email: "reset@example.com", Password: "old-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, err = svc.Login(ctx, auth.LoginRequest{Email: "reset@example.com", Password: "new-password"})
	assert.NoError(t, err)
}

func TestAuthService_RequestReset_UnknownUser(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc := newAuthService()
	err := svc.RequestReset(ctx, auth.RequestResetRequest{Email: "ghost@example.com"})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
