package user

import (
	"time"

	"github.com/google/uuid"
)

// Role of a platform account.
const (
	RoleAdmin  = "admin"
	RoleDriver = "driver"
)

// User represents a platform account in the domain.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         string
	FiscalID     *string
	PhoneNumber  *string

	// Mobile push targeting. Nil until the app registers a token.
	DeviceToken    *string
	DevicePlatform *string

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsDriver() bool {
	return u.Role == RoleDriver
}

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleDriver
}
