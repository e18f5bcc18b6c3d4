package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplyline/planning-api/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s := NewStore()
	s.Replace(
		[]domain.Sku{
			{ID: 1, SKU: "A1", Name: "Widget", Category: "Tools"},
			{ID: 2, SKU: "B2", Name: "Gadget", Category: "Electronics"},
			{ID: 3, SKU: "C3", Name: "Sprocket", Category: "Tools"},
		},
		[]domain.Warehouse{
			{ID: "north", Code: "North", Name: "Central Warehouse"},
			{ID: "west", Code: "West", Name: "West Warehouse"},
		},
		false,
	)

	return s
}

func TestStore_Replace(t *testing.T) {
	t.Run("normalizes nil warehouse sets", func(t *testing.T) {
		s := newTestStore(t)

		for _, sku := range s.Skus() {
			require.NotNil(t, sku.Warehouses)
			assert.Zero(t, sku.Warehouses.Len())
		}
	})

	t.Run("active tab defaults to first warehouse", func(t *testing.T) {
		s := newTestStore(t)

		assert.Equal(t, "north", s.ActiveWarehouseID())
	})

	t.Run("active tab survives reload when still present", func(t *testing.T) {
		s := newTestStore(t)
		s.SetActiveWarehouse("west")

		s.Replace(nil, []domain.Warehouse{{ID: "west"}, {ID: "east"}}, false)

		assert.Equal(t, "west", s.ActiveWarehouseID())
	})

	t.Run("active tab moves when its warehouse vanished", func(t *testing.T) {
		s := newTestStore(t)
		s.SetActiveWarehouse("west")

		s.Replace(nil, []domain.Warehouse{{ID: "east"}}, true)

		assert.Equal(t, "east", s.ActiveWarehouseID())
		assert.True(t, s.Fallback())
	})

	t.Run("replaces prior contents wholesale", func(t *testing.T) {
		s := newTestStore(t)
		s.SetAssignment(1, "north", true)

		s.Replace([]domain.Sku{{ID: 9, SKU: "Z9"}}, []domain.Warehouse{{ID: "north"}}, false)

		require.Equal(t, 1, s.Len())
		assert.Equal(t, uint(9), s.Skus()[0].ID)
		assert.Zero(t, s.Skus()[0].Warehouses.Len())
	})
}

func TestStore_SetAssignment(t *testing.T) {
	t.Run("is idempotent", func(t *testing.T) {
		s := newTestStore(t)

		s.SetAssignment(1, "north", true)
		s.SetAssignment(1, "north", true)

		assert.Equal(t, []string{"north"}, s.Skus()[0].Warehouses.IDs())
	})

	t.Run("round-trips back to the prior set", func(t *testing.T) {
		s := newTestStore(t)
		s.SetAssignment(2, "west", true)
		before := s.Skus()[1].Warehouses.Clone()

		s.SetAssignment(2, "north", true)
		s.SetAssignment(2, "north", false)

		assert.True(t, s.Skus()[1].Warehouses.Equal(before))
	})

	t.Run("unknown SKU is a no-op", func(t *testing.T) {
		s := newTestStore(t)

		s.SetAssignment(42, "north", true)

		assert.Equal(t, 3, s.Len())
		for _, sku := range s.Skus() {
			assert.Zero(t, sku.Warehouses.Len())
		}
	})

	t.Run("removing an absent warehouse is a no-op", func(t *testing.T) {
		s := newTestStore(t)

		s.SetAssignment(1, "north", false)

		assert.Zero(t, s.Skus()[0].Warehouses.Len())
	})
}

func TestStore_SetAllForWarehouse(t *testing.T) {
	t.Run("applies only to the scoped subset", func(t *testing.T) {
		s := newTestStore(t)
		filtered := Project(s.Skus(), "tools", "north").Skus
		require.Len(t, filtered, 2)

		s.SetAllForWarehouse("north", true, filtered)

		assert.True(t, s.Skus()[0].Warehouses.Has("north"))
		assert.False(t, s.Skus()[1].Warehouses.Has("north"), "SKU outside the filter must be untouched")
		assert.True(t, s.Skus()[2].Warehouses.Has("north"))
	})

	t.Run("never duplicates an existing member", func(t *testing.T) {
		s := newTestStore(t)
		s.SetAssignment(1, "north", true)

		s.SetAllForWarehouse("north", true, s.Skus())

		for _, sku := range s.Skus() {
			assert.Equal(t, []string{"north"}, sku.Warehouses.IDs())
		}
	})

	t.Run("deselect removes from every scoped SKU", func(t *testing.T) {
		s := newTestStore(t)
		s.SetAllForWarehouse("west", true, s.Skus())

		s.SetAllForWarehouse("west", false, s.Skus())

		for _, sku := range s.Skus() {
			assert.Zero(t, sku.Warehouses.Len())
		}
	})
}

func TestStore_Reset(t *testing.T) {
	s := newTestStore(t)
	s.SetAllForWarehouse("north", true, s.Skus())
	s.SetAssignment(2, "west", true)
	s.SetSearchTerm("gadget")
	s.SetActiveWarehouse("west")

	s.Reset()

	assert.Equal(t, 3, s.Len(), "reset must not change the SKU count")
	for _, sku := range s.Skus() {
		assert.Zero(t, sku.Warehouses.Len())
	}
	assert.Equal(t, "gadget", s.SearchTerm())
	assert.Equal(t, "west", s.ActiveWarehouseID())
}

func TestStore_Assignments(t *testing.T) {
	s := newTestStore(t)
	s.SetAssignment(1, "north", true)

	batch := s.Assignments()

	require.Len(t, batch, 3)
	assert.Equal(t, uint(1), batch[0].SkuID)
	assert.Equal(t, []string{"north"}, batch[0].Warehouses.IDs())

	// The snapshot must be isolated from later edits.
	s.SetAssignment(1, "west", true)
	assert.Equal(t, []string{"north"}, batch[0].Warehouses.IDs())
}
