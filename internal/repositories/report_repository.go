package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"machsight/internal/models/db_models"
)

type ReportRepositoryInterface interface {
	Create(ctx context.Context, report *db_models.Report) error
	ListByUser(ctx context.Context, userID string, limit int) ([]db_models.Report, error)
	FindByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*db_models.Report, error)
}

func NewReportRepository(db *gorm.DB) ReportRepositoryInterface {
	return &ReportRepository{db: db}
}

type ReportRepository struct {
	db *gorm.DB
}

func (r *ReportRepository) Create(ctx context.Context, report *db_models.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// ListByUser returns the caller's reports newest first with the owning
// machine preloaded. limit <= 0 means no limit.
func (r *ReportRepository) ListByUser(ctx context.Context, userID string, limit int) ([]db_models.Report, error) {
	var reports []db_models.Report
	q := r.db.WithContext(ctx).
		Preload("Machine").
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportRepository) FindByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*db_models.Report, error) {
	var report db_models.Report
	err := r.db.WithContext(ctx).
		Preload("Machine").
		Where("id = ? AND user_id = ?", id, userID).
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}
