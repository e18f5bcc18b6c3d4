package dao

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SalesRecord struct {
	ID uint `gorm:"primaryKey"`

	SKU     string          `gorm:"not null;index"`
	Region  string          `gorm:"not null"`
	Month   string          `gorm:"not null;index"` // "2006-01"
	Units   int             `gorm:"not null"`
	Revenue decimal.Decimal `gorm:"type:decimal(14,2);not null"`

	CreatedAt time.Time
}

type SalesDAO struct {
	db *gorm.DB
}

func NewSalesDAO(db *gorm.DB) *SalesDAO {
	return &SalesDAO{
		db: db,
	}
}

func (d *SalesDAO) GetAll(ctx context.Context) ([]SalesRecord, error) {
	var records []SalesRecord
	err := d.db.WithContext(ctx).Order("month, sku").Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (d *SalesDAO) GetBySKU(ctx context.Context, sku string) ([]SalesRecord, error) {
	var records []SalesRecord
	err := d.db.WithContext(ctx).Where("sku = ?", sku).Order("month").Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
