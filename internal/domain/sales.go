package domain

import "github.com/shopspring/decimal"

// SalesRecord is one month of sales for one SKU in one region.
type SalesRecord struct {
	ID       uint            `json:"id"`
	SKU      string          `json:"sku"`
	Region   string          `json:"region"`
	Month    string          `json:"month"` // "2006-01" format
	Units    int             `json:"units"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type RegionalSales struct {
	Region string `json:"region"`
	Sales  int    `json:"sales"`
}

// SalesHistory is the aggregated view behind the sales-history page.
type SalesHistory struct {
	TotalSales30d       int              `json:"totalSales30d"`
	MonthOverMonth      string           `json:"monthOverMonth"`
	TopSKU              string           `json:"topSKU"`
	TopSKUChange        string           `json:"topSKUChange"`
	TopRegion           string           `json:"topRegion"`
	TopRegionPercent    string           `json:"topRegionPercent"`
	Labels              []string         `json:"labels"`
	Sales               []int            `json:"sales"`
	SkuSales            map[string][]int `json:"skuSales"`
	RegionalPerformance []RegionalSales  `json:"regionalPerformance"`
}

// SalesForecast is a moving-average projection over a monthly series.
type SalesForecast struct {
	SKU       string   `json:"sku,omitempty"`
	Labels    []string `json:"labels"`
	History   []int    `json:"history"`
	Projected []int    `json:"projected"`
	Window    int      `json:"window"`
}
