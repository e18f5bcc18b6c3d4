package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDistributionNotFound = errors.New("distribution plan not found")

const (
	DistributionPending  = "pending"
	DistributionExecuted = "executed"
)

type DistributionPlan struct {
	ID string `gorm:"primaryKey"`

	Reference string `gorm:"not null"`
	Status    string `gorm:"not null;default:pending"`

	CreatedAt  time.Time
	ExecutedAt *time.Time
}

type DistributionDAO struct {
	db *gorm.DB
}

func NewDistributionDAO(db *gorm.DB) *DistributionDAO {
	return &DistributionDAO{
		db: db,
	}
}

func (d *DistributionDAO) GetAll(ctx context.Context) ([]DistributionPlan, error) {
	var plans []DistributionPlan
	err := d.db.WithContext(ctx).Order("created_at DESC").Find(&plans).Error
	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (d *DistributionDAO) Insert(ctx context.Context, plan DistributionPlan) (DistributionPlan, error) {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if plan.Status == "" {
		plan.Status = DistributionPending
	}

	if err := d.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return DistributionPlan{}, err
	}

	return plan, nil
}

func (d *DistributionDAO) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&DistributionPlan{}).Where("status = ?", status).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (d *DistributionDAO) MarkExecuted(ctx context.Context, id string, executedAt time.Time) error {
	result := d.db.WithContext(ctx).
		Model(&DistributionPlan{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": DistributionExecuted, "executed_at": executedAt})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDistributionNotFound
	}

	return nil
}
