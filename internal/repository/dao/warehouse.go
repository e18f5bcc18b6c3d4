package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrWarehouseExists   = errors.New("warehouse already exists")
	ErrWarehouseNotFound = errors.New("warehouse not found")
)

type Warehouse struct {
	ID string `gorm:"primaryKey"`

	Code              string `gorm:"not null"`
	Name              string `gorm:"not null"`
	Location          string
	SalesRegion       string
	IsMotherWarehouse bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type WarehouseDAO struct {
	db *gorm.DB
}

func NewWarehouseDAO(db *gorm.DB) *WarehouseDAO {
	return &WarehouseDAO{
		db: db,
	}
}

func (d *WarehouseDAO) GetAll(ctx context.Context) ([]Warehouse, error) {
	var warehouses []Warehouse
	err := d.db.WithContext(ctx).Order("created_at").Find(&warehouses).Error
	if err != nil {
		return nil, err
	}

	return warehouses, nil
}

func (d *WarehouseDAO) Insert(ctx context.Context, warehouse Warehouse) (Warehouse, error) {
	result := d.db.WithContext(ctx).Create(&warehouse)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Warehouse{}, ErrWarehouseExists
		}

		return Warehouse{}, result.Error
	}

	return warehouse, nil
}

// Delete removes the warehouse and every SKU assignment pointing at
// it, so the "warehouse set contains only known warehouses" invariant
// holds after the deletion.
func (d *WarehouseDAO) Delete(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("warehouse_id = ?", id).Delete(&SkuWarehouse{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Warehouse{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrWarehouseNotFound
		}

		return nil
	})
}
