package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrMaterialNotFound = errors.New("material not found")

type Material struct {
	ProductID string `gorm:"primaryKey"`

	ProductDescription string          `gorm:"not null"`
	Cat                string          `gorm:"not null"`
	SubCat             string          `gorm:"not null"`
	OldProductID       string          `gorm:"not null"`
	ProductType        string          `gorm:"not null"`
	IsPlannable        string          `gorm:"not null"`
	ABCCat             string          `gorm:"not null"`
	NLV                decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	LeadTime           int             `gorm:"not null"`
	MinLotSize         int             `gorm:"not null"`
	MaxLotSize         int             `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type MaterialDAO struct {
	db *gorm.DB
}

func NewMaterialDAO(db *gorm.DB) *MaterialDAO {
	return &MaterialDAO{
		db: db,
	}
}

func (d *MaterialDAO) GetAll(ctx context.Context) ([]Material, error) {
	var materials []Material
	err := d.db.WithContext(ctx).Order("product_id").Find(&materials).Error
	if err != nil {
		return nil, err
	}

	return materials, nil
}

// Upsert inserts the material or, when the product ID already exists,
// overwrites the existing row. This is the "add or edit" semantics of
// the material modal.
func (d *MaterialDAO) Upsert(ctx context.Context, material Material) (Material, error) {
	err := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			UpdateAll: true,
		}).
		Create(&material).Error
	if err != nil {
		return Material{}, err
	}

	return material, nil
}

// UpsertBatch applies a whole import in one transaction. Validation
// happens before this is called; a failure here rolls the entire batch
// back.
func (d *MaterialDAO) UpsertBatch(ctx context.Context, materials []Material) error {
	if len(materials) == 0 {
		return nil
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "product_id"}},
				UpdateAll: true,
			}).
			Create(&materials).Error
	})
}

func (d *MaterialDAO) Delete(ctx context.Context, productID string) error {
	result := d.db.WithContext(ctx).Delete(&Material{}, "product_id = ?", productID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMaterialNotFound
	}

	return nil
}
