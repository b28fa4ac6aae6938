package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Approves signups, resets and timesheets
	RoleUser  Role = "user"  // Regular employee
)

type User struct {
	ID           string
	EmpID        string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin checks if the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
