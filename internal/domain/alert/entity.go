package alert

import (
	"time"

	"github.com/google/uuid"
)

// Alert types recorded in the audit trail.
const (
	TypeJobPosted = "job_posted"
)

// Record is one append-only entry in the notification audit trail.
type Record struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      string
	JobID     *uuid.UUID
	Title     string
	Message   string
	CreatedAt time.Time
}
