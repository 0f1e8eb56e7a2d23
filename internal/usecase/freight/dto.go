package freight

import (
	"time"

	"github.com/google/uuid"

	domainFreight "freight-match/internal/domain/freight"
	domainVehicle "freight-match/internal/domain/vehicle"
)

// Request DTOs
type LocationRequest struct {
	City    string `json:"city" validate:"required,min=2,max=100"`
	State   string `json:"state" validate:"required,min=2,max=50"`
	Address string `json:"address" validate:"omitempty,max=255"`
}

type CreateJobRequest struct {
	Origin      LocationRequest `json:"origin" validate:"required"`
	Destination LocationRequest `json:"destination" validate:"required"`

	VehicleType      string `json:"vehicle_type" validate:"required,oneof=truck van car motorbike trailer"`
	CargoDescription string `json:"cargo_description" validate:"required,min=3,max=1000"`

	// Price arrives as a string and is parsed server side so malformed
	// values surface as a validation failure, not a JSON decode error.
	Price string `json:"price" validate:"required"`

	ContactName  string `json:"contact_name" validate:"required,min=2,max=255"`
	ContactPhone string `json:"contact_phone" validate:"required,min=8,max=20"`

	PickupAt *time.Time `json:"pickup_at" validate:"omitempty"`
}

type ListJobsRequest struct {
	Status      *string `form:"status" validate:"omitempty,oneof=available reserved completed"`
	VehicleType *string `form:"vehicle_type" validate:"omitempty,oneof=truck van car motorbike trailer"`
	Origin      string  `form:"origin"`
	Destination string  `form:"destination"`

	Page     int `form:"page" validate:"omitempty,min=1"`
	PageSize int `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// Response DTOs
type LocationResponse struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Address string `json:"address,omitempty"`
}

type JobResponse struct {
	ID uuid.UUID `json:"id"`

	Origin      LocationResponse `json:"origin"`
	Destination LocationResponse `json:"destination"`

	VehicleType      string  `json:"vehicle_type"`
	CargoDescription string  `json:"cargo_description"`
	Price            float64 `json:"price"`

	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`

	Status string `json:"status"`

	DriverID  *uuid.UUID `json:"driver_id,omitempty"`
	VehicleID *uuid.UUID `json:"vehicle_id,omitempty"`

	PickupAt    *time.Time `json:"pickup_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`

	AlertCount int64 `json:"alert_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
}

type JobListResponse struct {
	Data       []JobResponse `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

type StatisticsResponse struct {
	TotalJobs      int                 `json:"total_jobs"`
	ByStatus       map[string]int      `json:"by_status"`
	CompletedToday int                 `json:"completed_today"`
	RevenueToday   float64             `json:"revenue_today"`
	ClaimedRate    float64             `json:"claimed_rate"`
	TopDrivers     []TopDriverResponse `json:"top_drivers"`
}

type TopDriverResponse struct {
	DriverID      uuid.UUID `json:"driver_id"`
	DriverName    string    `json:"driver_name"`
	CompletedJobs int       `json:"completed_jobs"`
	TotalRevenue  float64   `json:"total_revenue"`
}

func ToJobResponse(job *domainFreight.Job, alertCount int64) *JobResponse {
	return &JobResponse{
		ID: job.ID,
		Origin: LocationResponse{
			City:    job.Origin.City,
			State:   job.Origin.State,
			Address: job.Origin.Address,
		},
		Destination: LocationResponse{
			City:    job.Destination.City,
			State:   job.Destination.State,
			Address: job.Destination.Address,
		},
		VehicleType:      string(job.VehicleType),
		CargoDescription: job.CargoDescription,
		Price:            job.Price,
		ContactName:      job.ContactName,
		ContactPhone:     job.ContactPhone,
		Status:           string(job.Status),
		DriverID:         job.DriverID,
		VehicleID:        job.VehicleID,
		PickupAt:         job.PickupAt,
		DeliveredAt:      job.DeliveredAt,
		AlertCount:       alertCount,
		CreatedAt:        job.CreatedAt,
		UpdatedAt:        job.UpdatedAt,
	}
}

func ToDomainFilter(req *ListJobsRequest) *domainFreight.Filter {
	filter := &domainFreight.Filter{
		Origin:      req.Origin,
		Destination: req.Destination,
		Page:        req.Page,
		PageSize:    req.PageSize,
	}

	if req.Status != nil {
		status := domainFreight.JobStatus(*req.Status)
		filter.Status = &status
	}
	if req.VehicleType != nil {
		vehicleType := domainVehicle.VehicleType(*req.VehicleType)
		filter.VehicleType = &vehicleType
	}

	return filter
}

func ToStatisticsResponse(stats *domainFreight.Statistics) *StatisticsResponse {
	resp := &StatisticsResponse{
		TotalJobs:      stats.TotalJobs,
		ByStatus:       stats.ByStatus,
		CompletedToday: stats.CompletedToday,
		RevenueToday:   stats.RevenueToday,
		ClaimedRate:    stats.ClaimedRate,
	}

	for _, d := range stats.TopDrivers {
		resp.TopDrivers = append(resp.TopDrivers, TopDriverResponse{
			DriverID:      d.DriverID,
			DriverName:    d.DriverName,
			CompletedJobs: d.CompletedJobs,
			TotalRevenue:  d.TotalRevenue,
		})
	}

	return resp
}
