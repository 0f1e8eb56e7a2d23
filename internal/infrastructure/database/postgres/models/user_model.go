package models

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the database model for User
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name           string    `gorm:"type:varchar(255);not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	Role           string    `gorm:"type:varchar(50);not null;default:'driver';index"`
	FiscalID       *string   `gorm:"type:varchar(20)"`
	PhoneNumber    *string   `gorm:"type:varchar(20)"`
	DeviceToken    *string   `gorm:"type:varchar(500)"`
	DevicePlatform *string   `gorm:"type:varchar(20)"`
	IsActive       bool      `gorm:"default:true;not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
