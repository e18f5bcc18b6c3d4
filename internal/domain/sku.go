package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sku struct {
	ID         uint            `json:"id"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Brand      string          `json:"brand"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	Warehouses WarehouseSet    `json:"warehouses"`
	CreatedAt  time.Time       `json:"-"`
	UpdatedAt  time.Time       `json:"-"`
}

// Normalize guarantees the warehouse set is never nil, so callers
// never have to distinguish "absent" from "empty".
func (s *Sku) Normalize() {
	if s.Warehouses == nil {
		s.Warehouses = NewWarehouseSet()
	}
}

// SkuAssignment is one row of a bulk warehouse-assignment batch.
type SkuAssignment struct {
	SkuID      uint         `json:"skuId"`
	Warehouses WarehouseSet `json:"warehouses"`
}
