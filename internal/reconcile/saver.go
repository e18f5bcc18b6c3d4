package reconcile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/supplyline/planning-api/internal/domain"
)

// BulkAssignRequest is the wire payload of the bulk save endpoint: the
// full batch, one row per SKU, saved in a single atomic request.
type BulkAssignRequest struct {
	Assignments []domain.SkuAssignment `json:"assignments"`
}

// SaveError reports a failed bulk save. The store is left untouched on
// failure, so the caller may simply retry.
type SaveError struct {
	StatusCode int
	Err        error
}

func (e *SaveError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("bulk save returned status %v", e.StatusCode)
	}
	return fmt.Sprintf("bulk save failed: %v", e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// SaveAssignments persists the batch all-or-nothing. In fallback mode
// it only simulates persistence with a fixed delay and always
// succeeds, so the flow stays exercisable without a backend.
func (c *Client) SaveAssignments(ctx context.Context, batch []domain.SkuAssignment, fallback bool) error {
	if fallback {
		select {
		case <-time.After(demoSaveDelay):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	body, err := json.Marshal(BulkAssignRequest{Assignments: batch})
	if err != nil {
		return &SaveError{Err: fmt.Errorf("json.Marshal -> %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/skus/bulk-assign-warehouses", bytes.NewReader(body))
	if err != nil {
		return &SaveError{Err: fmt.Errorf("http.NewRequestWithContext -> %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &SaveError{Err: fmt.Errorf("c.http.Do -> %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &SaveError{StatusCode: resp.StatusCode}
	}

	return nil
}
