package alert

import (
	"context"

	"github.com/google/uuid"

	domainAlert "freight-match/internal/domain/alert"
)

// Service exposes the per-user alert trail.
type Service struct {
	alertRepo domainAlert.Repository
}

func NewService(alertRepo domainAlert.Repository) *Service {
	return &Service{alertRepo: alertRepo}
}

func (s *Service) ListOwn(ctx context.Context, userID uuid.UUID, page, pageSize int) (*RecordListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	records, total, err := s.alertRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]RecordResponse, len(records))
	for i, r := range records {
		responses[i] = *ToRecordResponse(r)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &RecordListResponse{
		Data: responses,
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			TotalPages: totalPages,
		},
	}, nil
}
