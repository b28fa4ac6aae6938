package approval

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/arohak/timesheet-backend-go/internal/domain/approval"
	"github.com/arohak/timesheet-backend-go/internal/domain/user"
	"github.com/arohak/timesheet-backend-go/internal/pkg/database"
	"github.com/arohak/timesheet-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testApprovalDB *database.DB

const testFrontendURL = "http://localhost:5173"

type noopNotifier struct{}

func (noopNotifier) SendResetLink(to, resetLink, expiresAt string) error { return nil }
func (noopNotifier) SendApprovalNotice(to, name string) error            { return nil }

func approvalTestInit(t *testing.T) {
	if testApprovalDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testApprovalDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateApprovalTables(t *testing.T, ctx context.Context) {
	tables := []string{"pending_resets", "pending_users", "timesheet_days", "leave_applications", "timesheets", "employees", "users"}

	for _, table := range tables {
		_, err := testApprovalDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			continue
		}
	}
}

func newApprovalService() approval.Service {
	userRepo := postgresql.NewUserRepository(testApprovalDB)
	pendingUserRepo := postgresql.NewPendingUserRepository(testApprovalDB)
	pendingResetRepo := postgresql.NewPendingResetRepository(testApprovalDB)
	employeeRepo := postgresql.NewEmployeeRepository(testApprovalDB)
	return NewApprovalService(testApprovalDB, userRepo, pendingUserRepo, pendingResetRepo, employeeRepo, noopNotifier{}, testFrontendURL)
}

func stagePendingUser(t *testing.T, ctx context.Context, empID, email string) approval.PendingUser {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	pending, err := postgresql.NewPendingUserRepository(testApprovalDB).Create(ctx, approval.PendingUser{
		EmpID:        empID,
		Email:        email,
		Name:         "Pending Person",
		PasswordHash: string(hash),
	})
	require.NoError(t, err)
	return pending
}

func TestApprovalService_ApproveUser(t *testing.T) {
	ctx := context.Background()
	approvalTestInit(t)
	truncateApprovalTables(t, ctx)

	pending := stagePendingUser(t, ctx, "AT2001", "approve@example.com")
	svc := newApprovalService()

	approved, err := svc.ApproveUser(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, "AT2001", approved.EmpID)

	// User account exists with the staged hash
	created, err := postgresql.NewUserRepository(testApprovalDB).GetByEmpID(ctx, "AT2001")
	require.NoError(t, err)
	assert.Equal(t, user.RoleUser, created.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")))

	// Directory record exists
	_, err = postgresql.NewEmployeeRepository(testApprovalDB).GetByEmpID(ctx, "AT2001")
	require.NoError(t, err)

	// Pending record is gone
	_, err = postgresql.NewPendingUserRepository(testApprovalDB).GetByID(ctx, pending.ID)
	assert.ErrorIs(t, err, approval.ErrPendingUserNotFound)
}

func TestApprovalService_ApproveUser_ConflictRemovesPending(t *testing.T) {
	ctx := context.Background()
	approvalTestInit(t)
	truncateApprovalTables(t, ctx)

	svc := newApprovalService()

	first := stagePendingUser(t, ctx, "AT2002", "race@example.com")
	_, err := svc.ApproveUser(ctx, first.ID)
	require.NoError(t, err)

	// A second staged signup for the same identity lost the race
	second := stagePendingUser(t, ctx, "AT2002", "race-alt@example.com")
	_, err = svc.ApproveUser(ctx, second.ID)
	assert.ErrorIs(t, err, user.ErrUserExists)

	// The stale pending record was cleaned up
	_, err = postgresql.NewPendingUserRepository(testApprovalDB).GetByID(ctx, second.ID)
	assert.ErrorIs(t, err, approval.ErrPendingUserNotFound)
}

func TestApprovalService_RejectUser(t *testing.T) {
	ctx := context.Background()
	approvalTestInit(t)
	truncateApprovalTables(t, ctx)

	pending := stagePendingUser(t, ctx, "AT2003", "reject@example.com")
	svc := newApprovalService()

	rejected, err := svc.RejectUser(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, "AT2003", rejected.EmpID)

	// No account was created
	_, err = postgresql.NewUserRepository(testApprovalDB).GetByEmpID(ctx, "AT2003")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	_, err = svc.RejectUser(ctx, pending.ID)
	assert.ErrorIs(t, err, approval.ErrPendingUserNotFound)
}

func TestApprovalService_ApproveReset_NonConsuming(t *testing.T) {
	ctx := context.Background()
	approvalTestInit(t)
	truncateApprovalTables(t, ctx)

	svc := newApprovalService()

	pendingUser := stagePendingUser(t, ctx, "AT2004", "reset-q@example.com")
	_, err := svc.ApproveUser(ctx, pendingUser.ID)
	require.NoError(t, err)

	owner, err := postgresql.NewUserRepository(testApprovalDB).GetByEmpID(ctx, "AT2004")
	require.NoError(t, err)

	pendingReset, err := postgresql.NewPendingResetRepository(testApprovalDB).Create(ctx, approval.PendingReset{
		EmpID:  owner.EmpID,
		Email:  owner.Email,
		UserID: owner.ID,
		Token:  "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
	})
	require.NoError(t, err)

	approved, err := svc.ApproveReset(ctx, pendingReset.ID)
	require.NoError(t, err)
	assert.Contains(t, approved.ResetURL, "token="+pendingReset.Token)
	assert.Contains(t, approved.ResetURL, testFrontendURL)

	// Approving again re-discloses the same link
	again, err := svc.ApproveReset(ctx, pendingReset.ID)
	require.NoError(t, err)
	assert.Equal(t, approved.ResetURL, again.ResetURL)
}

func TestApprovalService_RevokeUser_CascadesResets(t *testing.T) {
	ctx := context.Background()
	approvalTestInit(t)
	truncateApprovalTables(t, ctx)

	svc := newApprovalService()

	pendingUser := stagePendingUser(t, ctx, "AT2005", "revoke@example.com")
	_, err := svc.ApproveUser(ctx, pendingUser.ID)
	require.NoError(t, err)

	owner, err := postgresql.NewUserRepository(testApprovalDB).GetByEmpID(ctx, "AT2005")
	require.NoError(t, err)

	_, err = postgresql.NewPendingResetRepository(testApprovalDB).Create(ctx, approval.PendingReset{
		EmpID:  owner.EmpID,
		Email:  owner.Email,
		UserID: owner.ID,
		Token:  "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
	})
	require.NoError(t, err)

	revoked, err := svc.RevokeUser(ctx, "AT2005")
	require.NoError(t, err)
	assert.Equal(t, "AT2005", revoked.EmpID)

	resets, err := postgresql.NewPendingResetRepository(testApprovalDB).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, resets)
}
