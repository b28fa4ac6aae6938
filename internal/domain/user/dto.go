package user

import "time"

// Response is the wire shape for a user; the password hash never leaves
// the service layer.
type Response struct {
	ID        string    `json:"id"`
	EmpID     string    `json:"empId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToResponse(u User) Response {
	return Response{
		ID:        u.ID,
		EmpID:     u.EmpID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func ToResponses(users []User) []Response {
	out := make([]Response, 0, len(users))
	for _, u := range users {
		out = append(out, ToResponse(u))
	}
	return out
}
