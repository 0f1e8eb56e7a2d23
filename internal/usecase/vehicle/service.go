package vehicle

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainFreight "freight-match/internal/domain/freight"
	domainVehicle "freight-match/internal/domain/vehicle"
	"freight-match/internal/logger"
	appErrors "freight-match/pkg/errors"
	"freight-match/pkg/utils"
)

// Service implements the vehicle registry use cases.
type Service struct {
	vehicleRepo domainVehicle.Repository
	freightRepo domainFreight.Repository
}

func NewService(vehicleRepo domainVehicle.Repository, freightRepo domainFreight.Repository) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		freightRepo: freightRepo,
	}
}

func (s *Service) CreateVehicle(ctx context.Context, ownerID uuid.UUID, req *CreateVehicleRequest) (*VehicleResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	vehicleType := domainVehicle.VehicleType(strings.ToLower(req.Type))
	if !domainVehicle.ValidType(vehicleType) {
		return nil, domainVehicle.ErrInvalidType
	}

	v := &domainVehicle.Vehicle{
		OwnerID:    ownerID,
		Type:       vehicleType,
		Plate:      strings.ToUpper(utils.SanitizeString(req.Plate)),
		Make:       utils.SanitizeString(req.Make),
		Model:      utils.SanitizeString(req.Model),
		Year:       req.Year,
		CapacityKg: req.CapacityKg,
	}

	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return nil, err
	}

	logger.Info("Vehicle registered",
		zap.String("vehicle_id", v.ID.String()),
		zap.String("owner_id", ownerID.String()),
		zap.String("type", string(v.Type)),
		zap.String("event", "vehicle_registered"),
	)

	return ToVehicleResponse(v), nil
}

func (s *Service) GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*VehicleResponse, error) {
	v, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	return ToVehicleResponse(v), nil
}

func (s *Service) ListOwn(ctx context.Context, ownerID uuid.UUID) (*VehicleListResponse, error) {
	vehicles, err := s.vehicleRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		responses[i] = *ToVehicleResponse(v)
	}

	return &VehicleListResponse{Data: responses}, nil
}

// DeleteVehicle removes a vehicle unless a reserved job still references it.
// Admins may delete any vehicle, drivers only their own.
func (s *Service) DeleteVehicle(ctx context.Context, vehicleID, requesterID uuid.UUID, isAdmin bool) error {
	v, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return err
	}

	if !isAdmin && v.OwnerID != requesterID {
		return domainVehicle.ErrNotOwner
	}

	active, err := s.freightRepo.CountActiveByVehicle(ctx, vehicleID)
	if err != nil {
		return err
	}
	if active > 0 {
		return domainVehicle.ErrVehicleInUse
	}

	if err := s.vehicleRepo.Delete(ctx, vehicleID); err != nil {
		return err
	}

	logger.Info("Vehicle deleted",
		zap.String("vehicle_id", vehicleID.String()),
		zap.String("event", "vehicle_deleted"),
	)

	return nil
}
