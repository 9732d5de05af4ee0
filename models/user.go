package models

import (
	"errors"
	"time"
)

// ErrInvalidRole is returned by [ParseRole] when the value does not name one
// of the known roles.
var ErrInvalidRole = errors.New("invalid role")

// Role is the closed set of capabilities a user can hold.
type Role string

const (
	// RoleUser is assigned to every account created through signup.
	RoleUser Role = "user"
	// RoleAdmin grants access to user administration.
	RoleAdmin Role = "admin"
)

// ParseRole converts a raw string into a [Role].
// Any value other than "user" or "admin" yields [ErrInvalidRole].
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// IsAdmin reports whether the role carries administrative capability.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User is a registered account.
// PasswordHash never leaves the server: it is excluded from JSON.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Profile returns the subset of user fields stored in a session and
// returned by login and checkAuth.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Role:      u.Role,
	}
}

// UserProfile is the public projection of a [User].
type UserProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      Role   `json:"role"`
}
