package user

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// NormalizeSignupRole maps a requested role to one a caller may self-select.
// Admin is never self-assignable; unknown values fall back to student.
func NormalizeSignupRole(s string) Role {
	switch Role(s) {
	case RoleFaculty:
		return RoleFaculty
	default:
		return RoleStudent
	}
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
