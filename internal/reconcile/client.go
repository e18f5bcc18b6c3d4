package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/supplyline/planning-api/internal/domain"
)

const (
	loadTimeout   = 5 * time.Second
	demoSaveDelay = time.Second
)

// Client fetches SKU and warehouse collections from the planning API
// and persists bulk assignments back to it. When the API cannot be
// reached it substitutes the fixed demo data set instead of failing.
type Client struct {
	baseURL  string
	http     *http.Client
	notifier Notifier
}

func NewClient(baseURL string, notifier Notifier) *Client {
	if notifier == nil {
		notifier = NopNotifier{}
	}

	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: loadTimeout},
		notifier: notifier,
	}
}

// LoadResult is the outcome of one load attempt. Fallback marks the
// demo data set; every SKU's warehouse set is normalized to non-nil.
type LoadResult struct {
	Skus       []domain.Sku
	Warehouses []domain.Warehouse
	Fallback   bool
}

// Load retrieves SKUs and warehouses within the load timeout. Any
// failure (timeout, transport error, non-2xx, malformed body) yields
// the demo data set with empty warehouse sets; a load therefore never
// returns an error and never retries on its own.
func (c *Client) Load(ctx context.Context) LoadResult {
	var skus []domain.Sku
	if err := c.getJSON(ctx, "/skus", &skus); err != nil {
		return c.demoFallback(err)
	}

	var warehouses []domain.Warehouse
	if err := c.getJSON(ctx, "/warehouses", &warehouses); err != nil {
		return c.demoFallback(err)
	}

	for i := range skus {
		skus[i].Normalize()
	}

	c.notifier.Notify("Data loaded successfully!", NoticeSuccess)

	return LoadResult{Skus: skus, Warehouses: warehouses}
}

func (c *Client) demoFallback(err error) LoadResult {
	zap.L().Info("planning API not available, using demo data", zap.Error(err))
	c.notifier.Notify("Using demo data. Connect to API for real data.", NoticeInfo)

	return LoadResult{
		Skus:       DemoSkus(),
		Warehouses: DemoWarehouses(),
		Fallback:   true,
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("c.http.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("GET %v returned status %v", path, resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json.Decode -> %w", err)
	}

	return nil
}
