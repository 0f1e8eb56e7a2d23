package freight

import (
	"time"

	"github.com/google/uuid"

	"freight-match/internal/domain/vehicle"
)

// JobStatus represents the lifecycle state of a freight job.
type JobStatus string

const (
	StatusAvailable JobStatus = "available" // posted by an admin, open for claims
	StatusReserved  JobStatus = "reserved"  // claimed by a driver with a compatible vehicle
	StatusCompleted JobStatus = "completed" // finalized, terminal
)

// Location identifies one end of a freight route.
type Location struct {
	City    string
	State   string
	Address string
}

// Job represents a freight transport request.
type Job struct {
	ID uuid.UUID

	Origin      Location
	Destination Location

	VehicleType      vehicle.VehicleType
	CargoDescription string
	Price            float64

	ContactName  string
	ContactPhone string

	Status JobStatus

	// Assignment. Both are set iff Status != StatusAvailable.
	DriverID  *uuid.UUID
	VehicleID *uuid.UUID

	PickupAt    *time.Time
	DeliveredAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Statistics aggregates freight activity for admin reports.
type Statistics struct {
	TotalJobs      int
	ByStatus       map[string]int
	CompletedToday int
	RevenueToday   float64
	ClaimedRate    float64
	TopDrivers     []TopDriverStats
}

// TopDriverStats ranks drivers by completed jobs.
type TopDriverStats struct {
	DriverID      uuid.UUID
	DriverName    string
	CompletedJobs int
	TotalRevenue  float64
}
