package response

import (
	"github.com/supplyline/planning-api/internal/service"
)

type ImportResultResponse struct {
	Imported int    `json:"imported"`
	Message  string `json:"message"`
}

// ImportRejectedResponse reports an all-or-nothing import failure with
// the per-row reasons, keyed by 1-based data row number.
type ImportRejectedResponse struct {
	ErrMsg string         `json:"error_msg"`
	Rows   map[int]string `json:"rows"`
}

func NewImportRejected(err *service.ImportValidationError) ImportRejectedResponse {
	rows := make(map[int]string, len(err.Rows))
	for row, rowErr := range err.Rows {
		rows[row] = rowErr.Error()
	}

	return ImportRejectedResponse{
		ErrMsg: "import rejected, no rows were saved",
		Rows:   rows,
	}
}
