package vehicle

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for vehicle persistence.
type Repository interface {
	Create(ctx context.Context, vehicle *Vehicle) error
	GetByID(ctx context.Context, vehicleID uuid.UUID) (*Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*Vehicle, error)
	Update(ctx context.Context, vehicle *Vehicle) error
	Delete(ctx context.Context, vehicleID uuid.UUID) error

	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Vehicle, error)

	// FirstByOwnerAndType returns the oldest registered vehicle of the given
	// type owned by the driver, or ErrVehicleNotFound.
	FirstByOwnerAndType(ctx context.Context, ownerID uuid.UUID, vehicleType VehicleType) (*Vehicle, error)
}
