package freight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainAlert "freight-match/internal/domain/alert"
	domainFreight "freight-match/internal/domain/freight"
	domainUser "freight-match/internal/domain/user"
	domainVehicle "freight-match/internal/domain/vehicle"
	"freight-match/internal/logger"
	"freight-match/internal/notification"
	appErrors "freight-match/pkg/errors"
	"freight-match/pkg/utils"
)

// Service implements the freight job lifecycle use cases.
type Service struct {
	freightRepo domainFreight.Repository
	userRepo    domainUser.Repository
	vehicleRepo domainVehicle.Repository
	alertRepo   domainAlert.Repository
	fanout      *notification.Fanout
}

func NewService(
	freightRepo domainFreight.Repository,
	userRepo domainUser.Repository,
	vehicleRepo domainVehicle.Repository,
	alertRepo domainAlert.Repository,
	fanout *notification.Fanout,
) *Service {
	return &Service{
		freightRepo: freightRepo,
		userRepo:    userRepo,
		vehicleRepo: vehicleRepo,
		alertRepo:   alertRepo,
		fanout:      fanout,
	}
}

// CreateJob posts a new freight job. The job is durably stored before the
// notification fan-out starts, and the response never depends on delivery
// outcomes.
func (s *Service) CreateJob(ctx context.Context, req *CreateJobRequest) (*JobResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	price, err := ParsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	job := &domainFreight.Job{
		Origin: domainFreight.Location{
			City:    req.Origin.City,
			State:   req.Origin.State,
			Address: req.Origin.Address,
		},
		Destination: domainFreight.Location{
			City:    req.Destination.City,
			State:   req.Destination.State,
			Address: req.Destination.Address,
		},
		VehicleType:      domainVehicle.VehicleType(req.VehicleType),
		CargoDescription: req.CargoDescription,
		Price:            price,
		ContactName:      req.ContactName,
		ContactPhone:     req.ContactPhone,
		// Caller input never chooses the initial state.
		Status:   domainFreight.StatusAvailable,
		PickupAt: req.PickupAt,
	}

	if err := s.freightRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	logger.Info("Freight job created",
		zap.String("job_id", job.ID.String()),
		zap.String("vehicle_type", string(job.VehicleType)),
		zap.Float64("price", job.Price),
		zap.String("event", "freight_job_created"),
	)

	// Best effort: fan-out runs detached from the request lifetime.
	go s.notifyDrivers(context.Background(), job)

	return ToJobResponse(job, 0), nil
}

// notifyDrivers pushes a job-posted alert to every driver with a compatible
// vehicle fleet and a registered device token, appending one audit record per
// target. Failures stay contained here.
func (s *Service) notifyDrivers(ctx context.Context, job *domainFreight.Job) {
	drivers, err := s.userRepo.FindDriversByVehicleType(ctx, string(job.VehicleType))
	if err != nil {
		logger.Error("Failed to resolve fan-out targets",
			zap.String("job_id", job.ID.String()),
			zap.Error(err),
		)
		return
	}
	if len(drivers) == 0 {
		return
	}

	title := "New freight available"
	body := fmt.Sprintf("%s -> %s, %s needed, R$ %.2f",
		job.Origin.City, job.Destination.City, job.VehicleType, job.Price)

	targets := make([]notification.Target, 0, len(drivers))
	for _, driver := range drivers {
		if driver.DeviceToken == nil {
			continue
		}

		jobID := job.ID
		record := &domainAlert.Record{
			UserID:  driver.ID,
			Type:    domainAlert.TypeJobPosted,
			JobID:   &jobID,
			Title:   title,
			Message: body,
		}
		if err := s.alertRepo.Append(ctx, record); err != nil {
			logger.Warn("Failed to append alert record",
				zap.String("user_id", driver.ID.String()),
				zap.String("job_id", job.ID.String()),
				zap.Error(err),
			)
		}

		targets = append(targets, notification.Target{
			UserID:      driver.ID,
			DeviceToken: *driver.DeviceToken,
		})
	}

	s.fanout.Deliver(ctx, notification.Message{
		JobID: job.ID,
		Title: title,
		Body:  body,
		Data: map[string]string{
			"job_id": job.ID.String(),
			"type":   domainAlert.TypeJobPosted,
		},
	}, targets)
}

// ClaimJob reserves an available job for the calling driver, binding the
// first compatible vehicle by registration order. The transition itself is a
// single conditional update so two concurrent claims cannot both win.
func (s *Service) ClaimJob(ctx context.Context, driverID, jobID uuid.UUID) (*JobResponse, error) {
	job, err := s.freightRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := ValidateStatusTransition(job.Status, domainFreight.StatusReserved); err != nil {
		return nil, domainFreight.ErrJobNotAvailable
	}

	compatible, err := s.vehicleRepo.FirstByOwnerAndType(ctx, driverID, job.VehicleType)
	if err != nil {
		if errors.Is(err, domainVehicle.ErrVehicleNotFound) {
			return nil, domainFreight.ErrNoCompatibleVehicle
		}
		return nil, err
	}

	if err := s.freightRepo.Reserve(ctx, jobID, driverID, compatible.ID); err != nil {
		return nil, err
	}

	updated, err := s.freightRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	logger.Info("Freight job claimed",
		zap.String("job_id", jobID.String()),
		zap.String("driver_id", driverID.String()),
		zap.String("vehicle_id", compatible.ID.String()),
		zap.String("event", "freight_job_claimed"),
	)

	alertCount, _ := s.alertRepo.CountByJob(ctx, jobID)
	return ToJobResponse(updated, alertCount), nil
}

// FinalizeJob moves a reserved job to completed and stamps the delivery time.
func (s *Service) FinalizeJob(ctx context.Context, jobID uuid.UUID) (*JobResponse, error) {
	job, err := s.freightRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if job.Status != domainFreight.StatusReserved {
		return nil, domainFreight.ErrJobNotReserved
	}

	if err := s.freightRepo.Complete(ctx, jobID, time.Now()); err != nil {
		return nil, err
	}

	updated, err := s.freightRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	logger.Info("Freight job finalized",
		zap.String("job_id", jobID.String()),
		zap.String("event", "freight_job_finalized"),
	)

	alertCount, _ := s.alertRepo.CountByJob(ctx, jobID)
	return ToJobResponse(updated, alertCount), nil
}

// DeleteJob removes a job unless a driver currently holds it. The reserved
// check lives in the repository delete itself so a concurrent claim cannot
// slip between a read and the removal.
func (s *Service) DeleteJob(ctx context.Context, jobID uuid.UUID) error {
	if err := s.freightRepo.Delete(ctx, jobID); err != nil {
		return err
	}

	logger.Info("Freight job deleted",
		zap.String("job_id", jobID.String()),
		zap.String("event", "freight_job_deleted"),
	)

	return nil
}

func (s *Service) GetJob(ctx context.Context, jobID uuid.UUID) (*JobResponse, error) {
	job, err := s.freightRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	alertCount, _ := s.alertRepo.CountByJob(ctx, jobID)
	return ToJobResponse(job, alertCount), nil
}

// ListAvailable returns open jobs, optionally filtered by vehicle type and
// origin/destination substring.
func (s *Service) ListAvailable(ctx context.Context, req *ListJobsRequest) (*JobListResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid query parameters", err)
	}

	filter := ToDomainFilter(req)
	status := domainFreight.StatusAvailable
	filter.Status = &status

	return s.list(ctx, filter)
}

// ListAll returns any job regardless of status; admin only at the route level.
func (s *Service) ListAll(ctx context.Context, req *ListJobsRequest) (*JobListResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid query parameters", err)
	}

	return s.list(ctx, ToDomainFilter(req))
}

func (s *Service) list(ctx context.Context, filter *domainFreight.Filter) (*JobListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	jobs, total, err := s.freightRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]JobResponse, len(jobs))
	for i, job := range jobs {
		alertCount, _ := s.alertRepo.CountByJob(ctx, job.ID)
		responses[i] = *ToJobResponse(job, alertCount)
	}

	totalPages := int(total) / filter.PageSize
	if int(total)%filter.PageSize > 0 {
		totalPages++
	}

	return &JobListResponse{
		Data: responses,
		Pagination: Pagination{
			Total:      total,
			Page:       filter.Page,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *Service) GetStatistics(ctx context.Context) (*StatisticsResponse, error) {
	stats, err := s.freightRepo.GetStatistics(ctx)
	if err != nil {
		return nil, err
	}

	return ToStatisticsResponse(stats), nil
}
