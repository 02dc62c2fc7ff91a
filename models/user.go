package models

import "time"

// UserRole enumerates the access levels known to the backend.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleBuyer   UserRole = "buyer"
	RoleViewer  UserRole = "viewer"
)

// User is the account profile returned by the backend. The client never
// mutates it directly; it is fetched on login and on session restore and
// displayed as-is.
type User struct {
	ID         int64      `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Role       UserRole   `json:"role"`
	Department string     `json:"department,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

// LoginRequest is the credential pair sent to POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// AuthResponse is returned by login and register. AccessToken is the opaque
// bearer credential the client persists; everything else is session-scoped.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
