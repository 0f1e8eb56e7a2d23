package alert

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for the append-only alert trail.
type Repository interface {
	Append(ctx context.Context, record *Record) error
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*Record, int64, error)
	CountByJob(ctx context.Context, jobID uuid.UUID) (int64, error)
}
