package models

import "time"

// Role is the typed capability level checked at route construction.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleClerk Role = "clerk"
)

// User is one of the two fixed credential sets (admin, clerk) seeded at
// startup. There is no registration; only the username/password can change.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         Role      `json:"role"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// UpdateCredentialsRequest represents the request body for changing a role's
// username and password
type UpdateCredentialsRequest struct {
	Role     Role   `json:"role"`
	Username string `json:"username"`
	Password string `json:"password"`
}
