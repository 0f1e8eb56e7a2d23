package vehicle

import (
	"time"

	"github.com/google/uuid"
)

// VehicleType enumerates the fleet categories a freight job can require.
type VehicleType string

const (
	TypeTruck     VehicleType = "truck"
	TypeVan       VehicleType = "van"
	TypeCar       VehicleType = "car"
	TypeMotorbike VehicleType = "motorbike"
	TypeTrailer   VehicleType = "trailer"
)

func ValidType(t VehicleType) bool {
	switch t {
	case TypeTruck, TypeVan, TypeCar, TypeMotorbike, TypeTrailer:
		return true
	}
	return false
}

// Vehicle represents a registered vehicle owned by a driver.
type Vehicle struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Type       VehicleType
	Plate      string
	Make       string
	Model      string
	Year       int
	CapacityKg float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
