package models

import (
	"time"

	"github.com/google/uuid"
)

// FreightJobModel represents the database model for FreightJob
type FreightJobModel struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`

	OriginCity    string `gorm:"type:varchar(100);not null;index"`
	OriginState   string `gorm:"type:varchar(50);not null"`
	OriginAddress string `gorm:"type:text;not null"`

	DestinationCity    string `gorm:"type:varchar(100);not null;index"`
	DestinationState   string `gorm:"type:varchar(50);not null"`
	DestinationAddress string `gorm:"type:text;not null"`

	VehicleType      string  `gorm:"type:varchar(50);not null;index"`
	CargoDescription string  `gorm:"type:text;not null"`
	Price            float64 `gorm:"type:decimal(12,2);not null"`

	ContactName  string `gorm:"type:varchar(255);not null"`
	ContactPhone string `gorm:"type:varchar(20);not null"`

	Status string `gorm:"type:varchar(50);not null;default:'available';index"`

	DriverID  *uuid.UUID `gorm:"type:uuid;index"`
	VehicleID *uuid.UUID `gorm:"type:uuid;index"`

	PickupAt    *time.Time `gorm:"type:timestamptz"`
	DeliveredAt *time.Time `gorm:"type:timestamptz"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`

	Driver  *UserModel    `gorm:"foreignKey:DriverID"`
	Vehicle *VehicleModel `gorm:"foreignKey:VehicleID"`
}

func (FreightJobModel) TableName() string {
	return "freight_jobs"
}
