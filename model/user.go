// Package model provides data models for the BookHaven LMS.
package model

import (
	"time"
)

// Role is the closed set of roles the system understands.
type Role string

// Known roles. Anything else parses to RoleGuest.
const (
	RoleGuest     Role = "guest"
	RoleUser      Role = "user"
	RoleLibrarian Role = "librarian"
	RoleAdmin     Role = "admin"
)

// ParseRole maps a raw role string onto the closed enum. Unrecognized
// values fall back to RoleGuest so role-indexed lookups can never miss.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleUser, RoleLibrarian, RoleAdmin, RoleGuest:
		return Role(s)
	default:
		return RoleGuest
	}
}

// IsAssignable reports whether the role may be stored on an account.
// Guest is a derived state, never an account role.
func (r Role) IsAssignable() bool {
	return r == RoleUser || r == RoleLibrarian || r == RoleAdmin
}

func (r Role) String() string { return string(r) }

// User represents an account in the system
type User struct {
	ID           string    `json:"id,omitempty"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash,omitempty"`
	Role         Role      `json:"role"` // user, librarian, admin
	IsActive     bool      `json:"is_active"`
	Status       string    `json:"status"` // pending, active, inactive
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser creates a new user with default values
func NewUser(username string, role Role) *User {
	now := time.Now()
	return &User{
		Username:  username,
		Role:      role,
		IsActive:  true,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAdmin returns true if the user is an admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanManageCatalog returns true if the user may add or edit catalog entries
func (u *User) CanManageCatalog() bool {
	return u.Role == RoleAdmin || u.Role == RoleLibrarian
}

// HasPermission checks if the user has a specific permission
func (u *User) HasPermission(permission string) bool {
	switch u.Role {
	case RoleAdmin:
		return true // Admin has all permissions
	case RoleLibrarian:
		if permission == "read" || permission == "write" {
			return true
		}
	case RoleUser:
		if permission == "read" {
			return true
		}
	}

	return false
}

// Summary strips server-only fields for API responses
func (u *User) Summary() map[string]interface{} {
	return map[string]interface{}{
		"username":  u.Username,
		"name":      u.Name,
		"email":     u.Email,
		"role":      u.Role,
		"is_active": u.IsActive,
		"status":    u.Status,
	}
}
