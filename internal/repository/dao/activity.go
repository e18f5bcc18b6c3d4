package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Activity struct {
	ID string `gorm:"primaryKey"`

	Action  string `gorm:"not null"`
	Details string

	CreatedAt time.Time `gorm:"index"`
}

type ActivityDAO struct {
	db *gorm.DB
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{
		db: db,
	}
}

func (d *ActivityDAO) Insert(ctx context.Context, activity Activity) (Activity, error) {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}

	if err := d.db.WithContext(ctx).Create(&activity).Error; err != nil {
		return Activity{}, err
	}

	return activity, nil
}

func (d *ActivityDAO) GetRecent(ctx context.Context, limit int) ([]Activity, error) {
	var activities []Activity
	err := d.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&activities).Error
	if err != nil {
		return nil, err
	}

	return activities, nil
}
