package vehicle

import (
	"time"

	"github.com/google/uuid"

	domainVehicle "freight-match/internal/domain/vehicle"
)

type CreateVehicleRequest struct {
	Type       string  `json:"type" validate:"required,oneof=truck van car motorbike trailer"`
	Plate      string  `json:"plate" validate:"required,min=5,max=16"`
	Make       string  `json:"make" validate:"required,min=2,max=64"`
	Model      string  `json:"model" validate:"required,min=1,max=64"`
	Year       int     `json:"year" validate:"required,min=1950,max=2100"`
	CapacityKg float64 `json:"capacity_kg" validate:"required,gt=0"`
}

type VehicleResponse struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Type       string    `json:"type"`
	Plate      string    `json:"plate"`
	Make       string    `json:"make"`
	Model      string    `json:"model"`
	Year       int       `json:"year"`
	CapacityKg float64   `json:"capacity_kg"`
	CreatedAt  time.Time `json:"created_at"`
}

type VehicleListResponse struct {
	Data []VehicleResponse `json:"data"`
}

func ToVehicleResponse(v *domainVehicle.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:         v.ID,
		OwnerID:    v.OwnerID,
		Type:       string(v.Type),
		Plate:      v.Plate,
		Make:       v.Make,
		Model:      v.Model,
		Year:       v.Year,
		CapacityKg: v.CapacityKg,
		CreatedAt:  v.CreatedAt,
	}
}
