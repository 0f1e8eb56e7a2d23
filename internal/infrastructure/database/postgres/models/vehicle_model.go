package models

import (
	"time"

	"github.com/google/uuid"
)

// VehicleModel represents the database model for Vehicle
type VehicleModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Type       string    `gorm:"type:varchar(50);not null;index"`
	Plate      string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Make       string    `gorm:"type:varchar(100);not null"`
	Model      string    `gorm:"type:varchar(100);not null"`
	Year       int       `gorm:"type:integer;not null"`
	CapacityKg float64   `gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	Owner *UserModel `gorm:"foreignKey:OwnerID"`
}

func (VehicleModel) TableName() string {
	return "vehicles"
}
