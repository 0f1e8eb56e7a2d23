package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight-match/internal/domain/freight"
	"freight-match/internal/domain/vehicle"
	"freight-match/internal/infrastructure/database/postgres/models"
)

type FreightRepository struct {
	db *DB
}

func NewFreightRepository(db *DB) *FreightRepository {
	return &FreightRepository{db: db}
}

func (r *FreightRepository) Create(ctx context.Context, job *freight.Job) error {
	job.ID = uuid.New()
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()
	if job.Status == "" {
		job.Status = freight.StatusAvailable
	}

	dbModel := toFreightJobModel(job)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create freight job: %w", err)
	}

	job.ID = dbModel.ID
	job.CreatedAt = dbModel.CreatedAt
	job.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *FreightRepository) GetByID(ctx context.Context, jobID uuid.UUID) (*freight.Job, error) {
	var dbModel models.FreightJobModel
	err := r.db.DB.WithContext(ctx).
		Preload("Driver").
		Preload("Vehicle").
		Where("id = ?", jobID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, freight.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get freight job: %w", err)
	}

	return toFreightJobEntity(&dbModel), nil
}

// Delete refuses to remove a reserved job. The status predicate makes the
// guard atomic with the removal, so a claim that lands concurrently cannot
// lose its job.
func (r *FreightRepository) Delete(ctx context.Context, jobID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ? AND status <> ?", jobID, string(freight.StatusReserved)).
		Delete(&models.FreightJobModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete freight job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Zero rows is either a missing job or a reserved one.
		var count int64
		err := r.db.DB.WithContext(ctx).
			Model(&models.FreightJobModel{}).
			Where("id = ?", jobID).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to delete freight job: %w", err)
		}
		if count > 0 {
			return freight.ErrJobReserved
		}
		return freight.ErrJobNotFound
	}

	return nil
}

func (r *FreightRepository) List(ctx context.Context, filter *freight.Filter) ([]*freight.Job, int64, error) {
	var dbModels []models.FreightJobModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.FreightJobModel{}).
		Preload("Driver").
		Preload("Vehicle")

	if filter.Status != nil {
		db = db.Where("status = ?", string(*filter.Status))
	}
	if filter.VehicleType != nil {
		db = db.Where("vehicle_type = ?", string(*filter.VehicleType))
	}
	if filter.DriverID != nil {
		db = db.Where("driver_id = ?", *filter.DriverID)
	}
	if filter.Origin != "" {
		origin := "%" + escapeLikePattern(filter.Origin) + "%"
		db = db.Where("origin_city ILIKE ? OR origin_state ILIKE ?", origin, origin)
	}
	if filter.Destination != "" {
		destination := "%" + escapeLikePattern(filter.Destination) + "%"
		db = db.Where("destination_city ILIKE ? OR destination_state ILIKE ?", destination, destination)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count freight jobs: %w", err)
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	err := db.Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&dbModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list freight jobs: %w", err)
	}

	jobs := make([]*freight.Job, len(dbModels))
	for i, dbModel := range dbModels {
		jobs[i] = toFreightJobEntity(&dbModel)
	}

	return jobs, total, nil
}

// Reserve is the claim compare-and-set: the status predicate in the WHERE
// clause guarantees at most one concurrent caller sees RowsAffected == 1.
func (r *FreightRepository) Reserve(ctx context.Context, jobID, driverID, vehicleID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.FreightJobModel{}).
		Where("id = ? AND status = ?", jobID, string(freight.StatusAvailable)).
		Updates(map[string]interface{}{
			"status":     string(freight.StatusReserved),
			"driver_id":  driverID,
			"vehicle_id": vehicleID,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to reserve freight job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return freight.ErrJobNotAvailable
	}

	return nil
}

func (r *FreightRepository) Complete(ctx context.Context, jobID uuid.UUID, deliveredAt time.Time) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.FreightJobModel{}).
		Where("id = ? AND status = ?", jobID, string(freight.StatusReserved)).
		Updates(map[string]interface{}{
			"status":       string(freight.StatusCompleted),
			"delivered_at": deliveredAt,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to complete freight job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return freight.ErrJobNotReserved
	}

	return nil
}

func (r *FreightRepository) CountActiveByVehicle(ctx context.Context, vehicleID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&models.FreightJobModel{}).
		Where("vehicle_id = ? AND status = ?", vehicleID, string(freight.StatusReserved)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active jobs by vehicle: %w", err)
	}

	return count, nil
}

func (r *FreightRepository) GetStatistics(ctx context.Context) (*freight.Statistics, error) {
	stats := &freight.Statistics{
		ByStatus: make(map[string]int),
	}

	var statusCounts []struct {
		Status string
		Count  int
	}
	err := r.db.DB.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) as count
		FROM freight_jobs
		GROUP BY status
	`).Scan(&statusCounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}

	for _, sc := range statusCounts {
		stats.TotalJobs += sc.Count
		stats.ByStatus[sc.Status] = sc.Count
	}

	today := time.Now().Truncate(24 * time.Hour)
	err = r.db.DB.WithContext(ctx).Raw(`
		SELECT COUNT(*) as count
		FROM freight_jobs
		WHERE status = 'completed' AND DATE(delivered_at) = DATE(?)
	`, today).Scan(&stats.CompletedToday).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get completed today: %w", err)
	}

	err = r.db.DB.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(price), 0) as total
		FROM freight_jobs
		WHERE status = 'completed' AND DATE(delivered_at) = DATE(?)
	`, today).Scan(&stats.RevenueToday).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue today: %w", err)
	}

	if stats.TotalJobs > 0 {
		claimed := stats.ByStatus[string(freight.StatusReserved)] + stats.ByStatus[string(freight.StatusCompleted)]
		stats.ClaimedRate = float64(claimed) / float64(stats.TotalJobs) * 100
	}

	var topDrivers []struct {
		DriverID      uuid.UUID
		DriverName    string
		CompletedJobs int
		TotalRevenue  float64
	}
	err = r.db.DB.WithContext(ctx).Raw(`
		SELECT u.id as driver_id, u.name as driver_name,
		       COUNT(*) as completed_jobs, COALESCE(SUM(f.price), 0) as total_revenue
		FROM freight_jobs f
		JOIN users u ON u.id = f.driver_id
		WHERE f.status = 'completed'
		GROUP BY u.id, u.name
		ORDER BY completed_jobs DESC
		LIMIT 10
	`).Scan(&topDrivers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get top drivers: %w", err)
	}

	for _, d := range topDrivers {
		stats.TopDrivers = append(stats.TopDrivers, freight.TopDriverStats{
			DriverID:      d.DriverID,
			DriverName:    d.DriverName,
			CompletedJobs: d.CompletedJobs,
			TotalRevenue:  d.TotalRevenue,
		})
	}

	return stats, nil
}

// escapeLikePattern neutralizes LIKE metacharacters so user-supplied filter
// text always matches literally.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

func toFreightJobModel(j *freight.Job) *models.FreightJobModel {
	return &models.FreightJobModel{
		ID:                 j.ID,
		OriginCity:         j.Origin.City,
		OriginState:        j.Origin.State,
		OriginAddress:      j.Origin.Address,
		DestinationCity:    j.Destination.City,
		DestinationState:   j.Destination.State,
		DestinationAddress: j.Destination.Address,
		VehicleType:        string(j.VehicleType),
		CargoDescription:   j.CargoDescription,
		Price:              j.Price,
		ContactName:        j.ContactName,
		ContactPhone:       j.ContactPhone,
		Status:             string(j.Status),
		DriverID:           j.DriverID,
		VehicleID:          j.VehicleID,
		PickupAt:           j.PickupAt,
		DeliveredAt:        j.DeliveredAt,
		CreatedAt:          j.CreatedAt,
		UpdatedAt:          j.UpdatedAt,
	}
}

func toFreightJobEntity(m *models.FreightJobModel) *freight.Job {
	return &freight.Job{
		ID: m.ID,
		Origin: freight.Location{
			City:    m.OriginCity,
			State:   m.OriginState,
			Address: m.OriginAddress,
		},
		Destination: freight.Location{
			City:    m.DestinationCity,
			State:   m.DestinationState,
			Address: m.DestinationAddress,
		},
		VehicleType:      vehicle.VehicleType(m.VehicleType),
		CargoDescription: m.CargoDescription,
		Price:            m.Price,
		ContactName:      m.ContactName,
		ContactPhone:     m.ContactPhone,
		Status:           freight.JobStatus(m.Status),
		DriverID:         m.DriverID,
		VehicleID:        m.VehicleID,
		PickupAt:         m.PickupAt,
		DeliveredAt:      m.DeliveredAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
