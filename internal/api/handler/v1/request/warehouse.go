package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/supplyline/planning-api/internal/domain"
)

type CreateWarehouseRequest struct {
	Code              string `json:"code"`
	Name              string `json:"name"`
	Location          string `json:"location"`
	SalesRegion       string `json:"sales_region"`
	IsMotherWarehouse bool   `json:"is_mother_warehouse"`
}

func (req *CreateWarehouseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Code, validation.Length(0, 50)),
	)
}

func (req *CreateWarehouseRequest) ToDomain() domain.Warehouse {
	return domain.Warehouse{
		Code:              req.Code,
		Name:              req.Name,
		Location:          req.Location,
		SalesRegion:       req.SalesRegion,
		IsMotherWarehouse: req.IsMotherWarehouse,
	}
}
