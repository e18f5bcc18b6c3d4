package service

import (
	"errors"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/supplyline/planning-api/internal/domain"
)

// MaterialRow carries one material as raw strings, the shape both the
// edit form and spreadsheet imports produce. Numeric fields stay
// strings so a bad cell surfaces as a field error instead of a decode
// failure; the json tags double as the spreadsheet column names.
type MaterialRow struct {
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

// numeric rejects blank cells too: a missing number is as unusable as
// a malformed one.
func numeric(value interface{}) error {
	s, _ := value.(string)
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return errors.New("must be a number")
	}

	return nil
}

func (r *MaterialRow) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.ProductID, validation.Required),
		validation.Field(&r.ProductDescription, validation.Required),
		validation.Field(&r.Cat, validation.Required),
		validation.Field(&r.SubCat, validation.Required),
		validation.Field(&r.OldProductID, validation.Required),
		validation.Field(&r.ProductType, validation.Required),
		validation.Field(&r.IsPlannable, validation.Required),
		validation.Field(&r.ABCCat, validation.Required),
		validation.Field(&r.NLV, validation.By(numeric)),
		validation.Field(&r.LeadTime, validation.By(numeric)),
		validation.Field(&r.MinLotSize, validation.By(numeric)),
		validation.Field(&r.MaxLotSize, validation.By(numeric)),
	)
}

// ToDomain converts a validated row; call Validate first so malformed
// cells never reach here.
func (r *MaterialRow) ToDomain() domain.Material {
	return domain.Material{
		ProductID:          strings.TrimSpace(r.ProductID),
		ProductDescription: strings.TrimSpace(r.ProductDescription),
		Cat:                strings.TrimSpace(r.Cat),
		SubCat:             strings.TrimSpace(r.SubCat),
		OldProductID:       strings.TrimSpace(r.OldProductID),
		ProductType:        strings.TrimSpace(r.ProductType),
		IsPlannable:        strings.TrimSpace(r.IsPlannable),
		ABCCat:             strings.TrimSpace(r.ABCCat),
		NLV:                parseDecimal(r.NLV),
		LeadTime:           parseInt(r.LeadTime),
		MinLotSize:         parseInt(r.MinLotSize),
		MaxLotSize:         parseInt(r.MaxLotSize),
	}
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}

	return d
}

func parseInt(s string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}

	return int(f)
}
