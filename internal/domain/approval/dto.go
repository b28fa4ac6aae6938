package approval

import (
	"time"

	"github.com/arohak/timesheet-backend-go/internal/pkg/validator"
)

// PendingIDRequest identifies a pending record from a Chi URL param.
type PendingIDRequest struct {
	ID string `json:"-"`
}

func (r *PendingIDRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	} else if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PendingUserResponse struct {
	ID        string    `json:"id"`
	EmpID     string    `json:"empId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type PendingResetResponse struct {
	ID        string    `json:"id"`
	EmpID     string    `json:"empId"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ApproveUserResponse reports the identity that was promoted to a full
// user account.
type ApproveUserResponse struct {
	UserID string `json:"userId"`
	EmpID  string `json:"empId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// ApproveResetResponse carries what the notifier needs to construct a
// reset link. The pending record is not consumed here, so the admin can
// re-fetch the link until the requester completes the reset.
type ApproveResetResponse struct {
	PendingID string `json:"pendingId"`
	EmpID     string `json:"empId"`
	Email     string `json:"email"`
	Token     string `json:"token"`
	ResetURL  string `json:"resetUrl"`
}

// RejectedResponse reports which identity a rejected or revoked record
// belonged to.
type RejectedResponse struct {
	EmpID string `json:"empId,omitempty"`
	Email string `json:"email"`
}
