package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/supplyline/planning-api/internal/domain"
)

type CreateSkuRequest struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Brand    string          `json:"brand"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}

func (req *CreateSkuRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.SKU, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Stock, validation.Min(0)),
	)
}

func (req *CreateSkuRequest) ToDomain() domain.Sku {
	return domain.Sku{
		SKU:        req.SKU,
		Name:       req.Name,
		Category:   req.Category,
		Brand:      req.Brand,
		Price:      req.Price,
		Stock:      req.Stock,
		Warehouses: domain.NewWarehouseSet(),
	}
}

type SkuAssignment struct {
	SkuID      uint     `json:"skuId"`
	Warehouses []string `json:"warehouses"`
}

type BulkAssignWarehousesRequest struct {
	Assignments []SkuAssignment `json:"assignments"`
}

func (req *BulkAssignWarehousesRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Assignments, validation.NotNil),
	)
}

func (req *BulkAssignWarehousesRequest) ToDomain() []domain.SkuAssignment {
	batch := make([]domain.SkuAssignment, len(req.Assignments))
	for i, a := range req.Assignments {
		batch[i] = domain.SkuAssignment{
			SkuID:      a.SkuID,
			Warehouses: domain.NewWarehouseSet(a.Warehouses...),
		}
	}

	return batch
}
