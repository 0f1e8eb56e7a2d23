package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertRecordModel represents the append-only alert trail table.
type AlertRecordModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type      string     `gorm:"type:varchar(50);not null"`
	JobID     *uuid.UUID `gorm:"type:uuid;index"`
	Title     string     `gorm:"type:varchar(255);not null"`
	Message   string     `gorm:"type:text;not null"`
	CreatedAt time.Time  `gorm:"not null;index"`

	User *UserModel       `gorm:"foreignKey:UserID"`
	Job  *FreightJobModel `gorm:"foreignKey:JobID"`
}

func (AlertRecordModel) TableName() string {
	return "alert_records"
}
