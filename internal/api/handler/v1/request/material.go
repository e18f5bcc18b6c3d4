package request

import (
	"github.com/supplyline/planning-api/internal/service"
)

// SaveMaterialRequest is the JSON shape of the material form: every
// field a string, keyed by the original column names. Validation lives
// on the service row so the form and spreadsheet imports share one set
// of rules.
type SaveMaterialRequest struct {
	ProductID          string `json:"Product_ID"`
	ProductDescription string `json:"Product_Description"`
	Cat                string `json:"Cat"`
	SubCat             string `json:"Sub_Cat"`
	OldProductID       string `json:"Old_Product_ID"`
	ProductType        string `json:"Product_Type"`
	IsPlannable        string `json:"Is_Plannable"`
	ABCCat             string `json:"ABC_Cat"`
	NLV                string `json:"NLV"`
	LeadTime           string `json:"Lead_Time"`
	MinLotSize         string `json:"Min_Lot_Size"`
	MaxLotSize         string `json:"Max_Lot_Size"`
}

func (req *SaveMaterialRequest) Validate() error {
	row := req.ToRow()
	return row.Validate()
}

func (req *SaveMaterialRequest) ToRow() service.MaterialRow {
	return service.MaterialRow{
		ProductID:          req.ProductID,
		ProductDescription: req.ProductDescription,
		Cat:                req.Cat,
		SubCat:             req.SubCat,
		OldProductID:       req.OldProductID,
		ProductType:        req.ProductType,
		IsPlannable:        req.IsPlannable,
		ABCCat:             req.ABCCat,
		NLV:                req.NLV,
		LeadTime:           req.LeadTime,
		MinLotSize:         req.MinLotSize,
		MaxLotSize:         req.MaxLotSize,
	}
}
