package response

import (
	"errors"
	"net/http"

	"github.com/arohak/timesheet-backend-go/internal/domain/approval"
	"github.com/arohak/timesheet-backend-go/internal/domain/auth"
	"github.com/arohak/timesheet-backend-go/internal/domain/employee"
	"github.com/arohak/timesheet-backend-go/internal/domain/timesheet"
	"github.com/arohak/timesheet-backend-go/internal/domain/user"
	"github.com/arohak/timesheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrInvalidResetToken):
		BadRequest(w, "Invalid or expired token", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserExists):
		Conflict(w, "User already exists")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Administrator privilege required")

	// Approval domain errors
	case errors.Is(err, approval.ErrPendingUserNotFound):
		NotFound(w, "Pending signup not found")
	case errors.Is(err, approval.ErrPendingResetNotFound):
		NotFound(w, "Pending reset not found")
	case errors.Is(err, approval.ErrSignupAlreadyPending):
		Conflict(w, "Signup already awaiting approval")

	// Directory and timesheet errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
