package reconcile

import (
	"strings"

	"github.com/supplyline/planning-api/internal/domain"
)

// Projection is the derived view consumed by the table: the filtered
// rows plus the select-all state for the active warehouse. It is always
// recomputed from the store; nothing here is stored back.
type Projection struct {
	Skus        []domain.Sku
	AllSelected bool
}

// Project filters skus by searchTerm and derives the select-all flag
// for activeWarehouseID. The underlying slice is never mutated.
func Project(skus []domain.Sku, searchTerm, activeWarehouseID string) Projection {
	filtered := make([]domain.Sku, 0, len(skus))
	for _, sku := range skus {
		if MatchesSearch(sku, searchTerm) {
			filtered = append(filtered, sku)
		}
	}

	return Projection{
		Skus:        filtered,
		AllSelected: IsAllSelectedForActive(filtered, activeWarehouseID),
	}
}

// MatchesSearch reports whether the SKU code, display name, or
// category contains term as a case-insensitive substring. An empty
// term matches everything.
func MatchesSearch(sku domain.Sku, term string) bool {
	if term == "" {
		return true
	}

	term = strings.ToLower(term)

	return strings.Contains(strings.ToLower(sku.SKU), term) ||
		strings.Contains(strings.ToLower(sku.Name), term) ||
		strings.Contains(strings.ToLower(sku.Category), term)
}

// IsAllSelectedForActive reports whether every filtered SKU carries
// warehouseID. It is false for an empty filtered list no matter what
// the store holds.
func IsAllSelectedForActive(filtered []domain.Sku, warehouseID string) bool {
	if len(filtered) == 0 {
		return false
	}

	for _, sku := range filtered {
		if !sku.Warehouses.Has(warehouseID) {
			return false
		}
	}

	return true
}

// WarehouseCoverage is the per-warehouse summary card: how many SKUs of
// the full store are assigned to the warehouse.
type WarehouseCoverage struct {
	WarehouseID string
	Code        string
	Assigned    int
	Total       int
	Percent     int
}

// CoverageByWarehouse computes assignment coverage over the full store,
// one entry per warehouse in warehouse order.
func CoverageByWarehouse(skus []domain.Sku, warehouses []domain.Warehouse) []WarehouseCoverage {
	coverage := make([]WarehouseCoverage, len(warehouses))
	for i, w := range warehouses {
		assigned := 0
		for _, sku := range skus {
			if sku.Warehouses.Has(w.ID) {
				assigned++
			}
		}

		percent := 0
		if len(skus) > 0 {
			percent = int(float64(assigned)/float64(len(skus))*100 + 0.5)
		}

		coverage[i] = WarehouseCoverage{
			WarehouseID: w.ID,
			Code:        w.Code,
			Assigned:    assigned,
			Total:       len(skus),
			Percent:     percent,
		}
	}
	return coverage
}
