package models

import "time"

// User roles. Authorization derives solely from this field on the resolved
// user record; nothing compares against hardcoded emails.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user's role grants admin console access.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserResponse is the public-facing user data.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts User to UserResponse.
func (u User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// LoginRequest carries the login form. The password is accepted for form
// compatibility but authentication is a lookup-by-email against the static
// dataset, not a security boundary.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

// AuthResponse is returned after successful authentication.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
