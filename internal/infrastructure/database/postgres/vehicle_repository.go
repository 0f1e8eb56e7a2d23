package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight-match/internal/domain/vehicle"
	"freight-match/internal/infrastructure/database/postgres/models"
)

type VehicleRepository struct {
	db *DB
}

func NewVehicleRepository(db *DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	v.ID = uuid.New()
	v.CreatedAt = time.Now()
	v.UpdatedAt = time.Now()

	dbModel := toVehicleModel(v)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return vehicle.ErrPlateTaken
		}
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	v.ID = dbModel.ID
	v.CreatedAt = dbModel.CreatedAt
	v.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, vehicleID uuid.UUID) (*vehicle.Vehicle, error) {
	var dbModel models.VehicleModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", vehicleID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, vehicle.ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return toVehicleEntity(&dbModel), nil
}

func (r *VehicleRepository) GetByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	var dbModel models.VehicleModel
	err := r.db.DB.WithContext(ctx).
		Where("plate = ?", plate).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, vehicle.ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle by plate: %w", err)
	}

	return toVehicleEntity(&dbModel), nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	v.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.VehicleModel{}).
		Where("id = ?", v.ID).
		Updates(map[string]interface{}{
			"type":        string(v.Type),
			"make":        v.Make,
			"model":       v.Model,
			"year":        v.Year,
			"capacity_kg": v.CapacityKg,
			"updated_at":  v.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return vehicle.ErrVehicleNotFound
	}

	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, vehicleID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", vehicleID).
		Delete(&models.VehicleModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return vehicle.ErrVehicleNotFound
	}

	return nil
}

func (r *VehicleRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*vehicle.Vehicle, error) {
	var dbModels []models.VehicleModel

	err := r.db.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	vehicles := make([]*vehicle.Vehicle, len(dbModels))
	for i, dbModel := range dbModels {
		vehicles[i] = toVehicleEntity(&dbModel)
	}

	return vehicles, nil
}

func (r *VehicleRepository) FirstByOwnerAndType(ctx context.Context, ownerID uuid.UUID, vehicleType vehicle.VehicleType) (*vehicle.Vehicle, error) {
	var dbModel models.VehicleModel

	err := r.db.DB.WithContext(ctx).
		Where("owner_id = ? AND type = ?", ownerID, string(vehicleType)).
		Order("created_at ASC").
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, vehicle.ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle by owner and type: %w", err)
	}

	return toVehicleEntity(&dbModel), nil
}

func toVehicleModel(v *vehicle.Vehicle) *models.VehicleModel {
	return &models.VehicleModel{
		ID:         v.ID,
		OwnerID:    v.OwnerID,
		Type:       string(v.Type),
		Plate:      v.Plate,
		Make:       v.Make,
		Model:      v.Model,
		Year:       v.Year,
		CapacityKg: v.CapacityKg,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func toVehicleEntity(m *models.VehicleModel) *vehicle.Vehicle {
	return &vehicle.Vehicle{
		ID:         m.ID,
		OwnerID:    m.OwnerID,
		Type:       vehicle.VehicleType(m.Type),
		Plate:      m.Plate,
		Make:       m.Make,
		Model:      m.Model,
		Year:       m.Year,
		CapacityKg: m.CapacityKg,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
