package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material is one row of the material master, keyed by ProductID.
type Material struct {
	ProductID          string          `json:"Product_ID"`
	ProductDescription string          `json:"Product_Description"`
	Cat                string          `json:"Cat"`
	SubCat             string          `json:"Sub_Cat"`
	OldProductID       string          `json:"Old_Product_ID"`
	ProductType        string          `json:"Product_Type"`
	IsPlannable        string          `json:"Is_Plannable"`
	ABCCat             string          `json:"ABC_Cat"`
	NLV                decimal.Decimal `json:"NLV"`
	LeadTime           int             `json:"Lead_Time"`
	MinLotSize         int             `json:"Min_Lot_Size"`
	MaxLotSize         int             `json:"Max_Lot_Size"`
	CreatedAt          time.Time       `json:"-"`
	UpdatedAt          time.Time       `json:"-"`
}
