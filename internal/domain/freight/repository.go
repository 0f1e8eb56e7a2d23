package freight

import (
	"context"
	"time"

	"github.com/google/uuid"

	"freight-match/internal/domain/vehicle"
)

// Repository defines the interface for freight job persistence.
type Repository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*Job, error)

	// Delete removes the job in a single conditional statement; it returns
	// ErrJobReserved when the row is currently reserved, so the guard cannot
	// race a concurrent claim.
	Delete(ctx context.Context, jobID uuid.UUID) error
	List(ctx context.Context, filter *Filter) ([]*Job, int64, error)
	GetStatistics(ctx context.Context) (*Statistics, error)

	// Reserve binds the driver and vehicle and moves the job to reserved in a
	// single conditional update on status; returns ErrJobNotAvailable when the
	// row was not in the available state.
	Reserve(ctx context.Context, jobID, driverID, vehicleID uuid.UUID) error

	// Complete moves a reserved job to completed and stamps the delivery time;
	// returns ErrJobNotReserved when the row was not reserved.
	Complete(ctx context.Context, jobID uuid.UUID, deliveredAt time.Time) error

	// CountActiveByVehicle reports how many reserved jobs reference the vehicle.
	CountActiveByVehicle(ctx context.Context, vehicleID uuid.UUID) (int64, error)
}

// Filter represents filtering options for listing freight jobs.
type Filter struct {
	Status      *JobStatus
	VehicleType *vehicle.VehicleType
	DriverID    *uuid.UUID

	// Case-insensitive substring match against city or state.
	Origin      string
	Destination string

	Page     int
	PageSize int
}
