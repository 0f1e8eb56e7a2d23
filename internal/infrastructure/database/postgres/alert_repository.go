package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"freight-match/internal/domain/alert"
	"freight-match/internal/infrastructure/database/postgres/models"
)

type AlertRepository struct {
	db *DB
}

func NewAlertRepository(db *DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) Append(ctx context.Context, record *alert.Record) error {
	record.ID = uuid.New()
	record.CreatedAt = time.Now()

	dbModel := toAlertRecordModel(record)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to append alert record: %w", err)
	}

	record.ID = dbModel.ID
	record.CreatedAt = dbModel.CreatedAt

	return nil
}

func (r *AlertRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*alert.Record, int64, error) {
	var dbModels []models.AlertRecordModel
	var total int64

	db := r.db.DB.WithContext(ctx).
		Model(&models.AlertRecordModel{}).
		Where("user_id = ?", userID)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count alert records: %w", err)
	}

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	err := db.Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&dbModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list alert records: %w", err)
	}

	records := make([]*alert.Record, len(dbModels))
	for i, dbModel := range dbModels {
		records[i] = toAlertRecordEntity(&dbModel)
	}

	return records, total, nil
}

func (r *AlertRepository) CountByJob(ctx context.Context, jobID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&models.AlertRecordModel{}).
		Where("job_id = ?", jobID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count alert records by job: %w", err)
	}

	return count, nil
}

func toAlertRecordModel(a *alert.Record) *models.AlertRecordModel {
	return &models.AlertRecordModel{
		ID:        a.ID,
		UserID:    a.UserID,
		Type:      a.Type,
		JobID:     a.JobID,
		Title:     a.Title,
		Message:   a.Message,
		CreatedAt: a.CreatedAt,
	}
}

func toAlertRecordEntity(m *models.AlertRecordModel) *alert.Record {
	return &alert.Record{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      m.Type,
		JobID:     m.JobID,
		Title:     m.Title,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
