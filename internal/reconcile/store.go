package reconcile

import (
	"github.com/supplyline/planning-api/internal/domain"
)

// Store holds the session's assignment state: the ordered SKU list,
// the warehouse list, and the view inputs (active tab, search term).
// SKU order is load order and is stable across every mutation; the SKU
// count only changes on Replace. All state transitions happen on the
// session's event loop, so the store is not safe for concurrent use.
type Store struct {
	skus              []domain.Sku
	warehouses        []domain.Warehouse
	fallback          bool
	activeWarehouseID string
	searchTerm        string
}

func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a freshly loaded data set wholesale, discarding any
// prior contents. Warehouse sets are normalized so they are never nil.
// The active tab is kept when it still exists, otherwise it moves to
// the first warehouse of the new set.
func (s *Store) Replace(skus []domain.Sku, warehouses []domain.Warehouse, fallback bool) {
	for i := range skus {
		skus[i].Normalize()
	}

	s.skus = skus
	s.warehouses = warehouses
	s.fallback = fallback

	if !s.hasWarehouse(s.activeWarehouseID) {
		s.activeWarehouseID = ""
		if len(warehouses) > 0 {
			s.activeWarehouseID = warehouses[0].ID
		}
	}
}

// Skus returns the live SKU sequence in load order. Callers must treat
// it as read-only; all mutation goes through the store's operations.
func (s *Store) Skus() []domain.Sku {
	return s.skus
}

func (s *Store) Warehouses() []domain.Warehouse {
	return s.warehouses
}

func (s *Store) Fallback() bool {
	return s.fallback
}

func (s *Store) Len() int {
	return len(s.skus)
}

func (s *Store) ActiveWarehouseID() string {
	return s.activeWarehouseID
}

// SetActiveWarehouse switches the active tab. The search term is left
// untouched; the two filter axes are independent.
func (s *Store) SetActiveWarehouse(warehouseID string) {
	s.activeWarehouseID = warehouseID
}

func (s *Store) SearchTerm() string {
	return s.searchTerm
}

func (s *Store) SetSearchTerm(term string) {
	s.searchTerm = term
}

// SetAssignment inserts or removes warehouseID in the matching SKU's
// warehouse set. Unknown SKU IDs are a no-op. The operation is
// idempotent: repeating it leaves the set unchanged.
func (s *Store) SetAssignment(skuID uint, warehouseID string, allowed bool) {
	for i := range s.skus {
		if s.skus[i].ID != skuID {
			continue
		}

		s.skus[i].Normalize()
		if allowed {
			s.skus[i].Warehouses.Add(warehouseID)
		} else {
			s.skus[i].Warehouses.Remove(warehouseID)
		}

		return
	}
}

// SetAllForWarehouse applies one assignment to every SKU in scope.
// Scope is the currently projected (filtered) view, not necessarily
// the whole store; SKUs outside it are untouched.
func (s *Store) SetAllForWarehouse(warehouseID string, allowed bool, scope []domain.Sku) {
	inScope := make(map[uint]struct{}, len(scope))
	for _, sku := range scope {
		inScope[sku.ID] = struct{}{}
	}

	for i := range s.skus {
		if _, ok := inScope[s.skus[i].ID]; !ok {
			continue
		}

		s.skus[i].Normalize()
		if allowed {
			s.skus[i].Warehouses.Add(warehouseID)
		} else {
			s.skus[i].Warehouses.Remove(warehouseID)
		}
	}
}

// Reset clears every SKU's warehouse set, regardless of the active tab
// or search term. There is no undo within the session.
func (s *Store) Reset() {
	for i := range s.skus {
		s.skus[i].Warehouses = domain.NewWarehouseSet()
	}
}

// Assignments snapshots the current store state as a bulk-save batch,
// one row per SKU in load order. The sets are cloned so an in-flight
// save is isolated from later edits.
func (s *Store) Assignments() []domain.SkuAssignment {
	batch := make([]domain.SkuAssignment, len(s.skus))
	for i, sku := range s.skus {
		set := sku.Warehouses
		if set == nil {
			set = domain.NewWarehouseSet()
		}
		batch[i] = domain.SkuAssignment{
			SkuID:      sku.ID,
			Warehouses: set.Clone(),
		}
	}
	return batch
}

func (s *Store) hasWarehouse(id string) bool {
	if id == "" {
		return false
	}
	for _, w := range s.warehouses {
		if w.ID == id {
			return true
		}
	}
	return false
}
