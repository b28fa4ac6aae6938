package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/arohak/timesheet-backend-go/internal/config"
	"github.com/arohak/timesheet-backend-go/internal/domain/user"
	appHTTP "github.com/arohak/timesheet-backend-go/internal/handler/http"
	"github.com/arohak/timesheet-backend-go/internal/pkg/cron"
	"github.com/arohak/timesheet-backend-go/internal/pkg/database"
	"github.com/arohak/timesheet-backend-go/internal/pkg/email"
	"github.com/arohak/timesheet-backend-go/internal/pkg/jwt"
	"github.com/arohak/timesheet-backend-go/internal/repository/postgresql"
	approvalService "github.com/arohak/timesheet-backend-go/internal/service/approval"
	authService "github.com/arohak/timesheet-backend-go/internal/service/auth"
	timesheetService "github.com/arohak/timesheet-backend-go/internal/service/timesheet"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	pendingUserRepo := postgresql.NewPendingUserRepository(db)
	pendingResetRepo := postgresql.NewPendingResetRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	notifier, err := email.NewNotifier(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email notifier:", err)
	}

	authSvc := authService.NewAuthService(db, userRepo, pendingUserRepo, pendingResetRepo, jwtService)
	approvalSvc := approvalService.NewApprovalService(db, userRepo, pendingUserRepo, pendingResetRepo, employeeRepo, notifier, cfg.App.FrontendURL)
	timesheetSvc := timesheetService.NewTimesheetService(db, timesheetRepo, employeeRepo)

	if err := seedAdmin(cfg, userRepo); err != nil {
		log.Fatal("Failed to seed admin account:", err)
	}

	scheduler := cron.NewScheduler()
	cron.NewPendingJobs(pendingUserRepo, pendingResetRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(authSvc)
	approvalHandler := appHTTP.NewApprovalHandler(approvalSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.FrontendURL,
		cfg.App.Env,
		authHandler,
		approvalHandler,
		timesheetHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

// seedAdmin creates the administrator account from ADMIN_* env config
// on first boot. An existing account with the same emp_id wins.
func seedAdmin(cfg *config.Config, userRepo user.UserRepository) error {
	if cfg.Admin.EmpID == "" {
		return nil
	}

	ctx := context.Background()
	_, err := userRepo.GetByEmpID(ctx, cfg.Admin.EmpID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = userRepo.Create(ctx, user.User{
		EmpID:        cfg.Admin.EmpID,
		Email:        cfg.Admin.Email,
		Name:         cfg.Admin.Name,
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
	})
	if errors.Is(err, user.ErrUserExists) {
		return nil
	}
	return err
}
