package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for user persistence.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID uuid.UUID) error
	List(ctx context.Context, page, pageSize int) ([]*User, int64, error)

	SetDeviceToken(ctx context.Context, userID uuid.UUID, token, platform string) error
	ClearDeviceToken(ctx context.Context, userID uuid.UUID) error

	// FindDriversByVehicleType returns active drivers owning at least one
	// vehicle of the given type and holding a device token.
	FindDriversByVehicleType(ctx context.Context, vehicleType string) ([]*User, error)
}
