package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFile = errors.New("unsupported file type, expected .xlsx or .csv")
	ErrMissingColumns  = errors.New("missing required columns")
)

var materialColumns = []string{
	"Product_ID",
	"Product_Description",
	"Cat",
	"Sub_Cat",
	"Old_Product_ID",
	"Product_Type",
	"Is_Plannable",
	"ABC_Cat",
	"NLV",
	"Lead_Time",
	"Min_Lot_Size",
	"Max_Lot_Size",
}

// ParseMaterialFile reads an uploaded spreadsheet into raw rows. The
// first row must be a header naming the material columns; extra
// columns are ignored and fully empty rows are skipped.
func ParseMaterialFile(filename string, r io.Reader) ([]MaterialRow, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return parseXLSX(r)
	case ".csv":
		return parseCSV(r)
	default:
		return nil, ErrUnsupportedFile
	}
}

func parseXLSX(r io.Reader) ([]MaterialRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenReader -> %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyImport
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("f.GetRows -> %w", err)
	}

	return rowsToMaterials(rows)
}

func parseCSV(r io.Reader) ([]MaterialRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // header decides the shape, not the codec

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reader.ReadAll -> %w", err)
	}

	return rowsToMaterials(rows)
}

func rowsToMaterials(rows [][]string) ([]MaterialRow, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyImport
	}

	colIndex, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	cell := func(row []string, column string) string {
		idx := colIndex[column]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	materials := make([]MaterialRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		materials = append(materials, MaterialRow{
			ProductID:          cell(row, "Product_ID"),
			ProductDescription: cell(row, "Product_Description"),
			Cat:                cell(row, "Cat"),
			SubCat:             cell(row, "Sub_Cat"),
			OldProductID:       cell(row, "Old_Product_ID"),
			ProductType:        cell(row, "Product_Type"),
			IsPlannable:        cell(row, "Is_Plannable"),
			ABCCat:             cell(row, "ABC_Cat"),
			NLV:                cell(row, "NLV"),
			LeadTime:           cell(row, "Lead_Time"),
			MinLotSize:         cell(row, "Min_Lot_Size"),
			MaxLotSize:         cell(row, "Max_Lot_Size"),
		})
	}

	return materials, nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, column := range materialColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrMissingColumns, strings.Join(missing, ", "))
	}

	return index, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
