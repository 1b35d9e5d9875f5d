package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"machsight/internal/models/db_models"
)

type MachineRepositoryInterface interface {
	Create(ctx context.Context, machine *db_models.Machine) error
	FindByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*db_models.Machine, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.Machine, error)
	ReportCounts(ctx context.Context, userID string) (map[uuid.UUID]int64, error)
}

func NewMachineRepository(db *gorm.DB) MachineRepositoryInterface {
	return &MachineRepository{db: db}
}

type MachineRepository struct {
	db *gorm.DB
}

func (r *MachineRepository) Create(ctx context.Context, machine *db_models.Machine) error {
	return r.db.WithContext(ctx).Create(machine).Error
}

func (r *MachineRepository) FindByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*db_models.Machine, error) {
	var machine db_models.Machine
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&machine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &machine, nil
}

func (r *MachineRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Machine, error) {
	var machines []db_models.Machine
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&machines).Error
	if err != nil {
		return nil, err
	}
	return machines, nil
}

func (r *MachineRepository) ReportCounts(ctx context.Context, userID string) (map[uuid.UUID]int64, error) {
	type row struct {
		MachineID uuid.UUID
		N         int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&db_models.Report{}).
		Select("machine_id, count(*) as n").
		Where("user_id = ?", userID).
		Group("machine_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.MachineID] = r.N
	}
	return counts, nil
}
