package alert

import (
	"time"

	"github.com/google/uuid"

	domainAlert "freight-match/internal/domain/alert"
)

type RecordResponse struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	JobID     *uuid.UUID `json:"job_id,omitempty"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
}

type RecordListResponse struct {
	Data       []RecordResponse `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
}

func ToRecordResponse(r *domainAlert.Record) *RecordResponse {
	return &RecordResponse{
		ID:        r.ID,
		Type:      r.Type,
		JobID:     r.JobID,
		Title:     r.Title,
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}
}
