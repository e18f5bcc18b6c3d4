package domain

import "time"

type Warehouse struct {
	ID                string    `json:"id"`
	Code              string    `json:"code"`
	Name              string    `json:"name"`
	Location          string    `json:"location"`
	SalesRegion       string    `json:"sales_region"`
	IsMotherWarehouse bool      `json:"is_mother_warehouse"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`
}
