package domain

import (
	"errors"
	"time"
)

// Role governs authorization decisions.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Status governs whether an account may authenticate.
// Active accounts flip to inactive (and back) via deactivate/activate;
// suspended is reached only by administrative action, and only an explicit
// activate returns a suspended account to active.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidInput = errors.New("invalid input")
var ErrMissingID = errors.New("record id is required")
var ErrForbidden = errors.New("access forbidden")

// User models an account in the system. PasswordHash is deliberately
// excluded from JSON so it can never leak through a response payload.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CanAuthenticate reports whether the account status permits a successful
// login. Inactive and suspended accounts are rejected identically.
func (u *User) CanAuthenticate() bool {
	return u.Status == StatusActive
}
