package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrSkuExists = errors.New("sku already exists")

type Sku struct {
	ID uint `gorm:"primaryKey"`

	SKU      string          `gorm:"unique;not null"`
	Name     string          `gorm:"not null"`
	Category string          `gorm:"not null"`
	Brand    string
	Price    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock    int             `gorm:"not null;default:0"`

	Assignments []SkuWarehouse `gorm:"foreignKey:SkuID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SkuWarehouse is one row of the sku ↔ warehouse relation: "this SKU
// may be sold from this warehouse". The composite unique index keeps
// the relation a set.
type SkuWarehouse struct {
	ID          uint   `gorm:"primaryKey"`
	SkuID       uint   `gorm:"not null;uniqueIndex:idx_sku_warehouse"`
	WarehouseID string `gorm:"not null;uniqueIndex:idx_sku_warehouse"`
}

func (SkuWarehouse) TableName() string {
	return "sku_warehouse_assignments"
}

type SkuDAO struct {
	db *gorm.DB
}

func NewSkuDAO(db *gorm.DB) *SkuDAO {
	return &SkuDAO{
		db: db,
	}
}

func (d *SkuDAO) GetAll(ctx context.Context) ([]Sku, error) {
	var skus []Sku
	err := d.db.WithContext(ctx).Preload("Assignments").Order("id").Find(&skus).Error
	if err != nil {
		return nil, err
	}

	return skus, nil
}

func (d *SkuDAO) Insert(ctx context.Context, sku Sku) (Sku, error) {
	result := d.db.WithContext(ctx).Create(&sku)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Sku{}, ErrSkuExists
		}

		return Sku{}, result.Error
	}

	return sku, nil
}

// ReplaceAssignments replaces every listed SKU's warehouse relation in
// one transaction. The whole batch applies or none of it does; SKU IDs
// with no matching row are skipped, mirroring the client's no-op
// semantics for unknown SKUs.
func (d *SkuDAO) ReplaceAssignments(ctx context.Context, assignments map[uint][]string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make([]uint, 0, len(assignments))
		for skuID := range assignments {
			ids = append(ids, skuID)
		}

		var known []uint
		if err := tx.Model(&Sku{}).Where("id IN ?", ids).Pluck("id", &known).Error; err != nil {
			return err
		}

		for _, skuID := range known {
			if err := tx.Where("sku_id = ?", skuID).Delete(&SkuWarehouse{}).Error; err != nil {
				return err
			}

			rows := make([]SkuWarehouse, 0, len(assignments[skuID]))
			for _, warehouseID := range assignments[skuID] {
				rows = append(rows, SkuWarehouse{SkuID: skuID, WarehouseID: warehouseID})
			}
			if len(rows) == 0 {
				continue
			}

			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
