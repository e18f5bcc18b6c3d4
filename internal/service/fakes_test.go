package service

import (
	"context"
	"fmt"

	"github.com/supplyline/planning-api/internal/domain"
)

type fakeActivityRepo struct {
	recorded []domain.Activity
	recent   []domain.Activity
	err      error
}

func (f *fakeActivityRepo) Record(_ context.Context, action, details string) (domain.Activity, error) {
	if f.err != nil {
		return domain.Activity{}, f.err
	}

	a := domain.Activity{
		ID:      fmt.Sprintf("act-%v", len(f.recorded)+1),
		Action:  action,
		Details: details,
	}
	f.recorded = append(f.recorded, a)

	return a, nil
}

func (f *fakeActivityRepo) GetRecent(_ context.Context, limit int) ([]domain.Activity, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}

	return f.recent, nil
}

type fakeSkuRepo struct {
	skus     []domain.Sku
	replaced []domain.SkuAssignment
	err      error
}

func (f *fakeSkuRepo) GetAll(context.Context) ([]domain.Sku, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.skus, nil
}

func (f *fakeSkuRepo) Create(_ context.Context, sku domain.Sku) (domain.Sku, error) {
	if f.err != nil {
		return domain.Sku{}, f.err
	}
	sku.ID = uint(len(f.skus) + 1)
	f.skus = append(f.skus, sku)

	return sku, nil
}

func (f *fakeSkuRepo) BulkReplaceAssignments(_ context.Context, batch []domain.SkuAssignment) error {
	if f.err != nil {
		return f.err
	}
	f.replaced = batch

	return nil
}

type fakeWarehouseRepo struct {
	warehouses []domain.Warehouse
	deleted    []string
	err        error
}

func (f *fakeWarehouseRepo) GetAll(context.Context) ([]domain.Warehouse, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.warehouses, nil
}

func (f *fakeWarehouseRepo) Create(_ context.Context, warehouse domain.Warehouse) (domain.Warehouse, error) {
	if f.err != nil {
		return domain.Warehouse{}, f.err
	}
	f.warehouses = append(f.warehouses, warehouse)

	return warehouse, nil
}

func (f *fakeWarehouseRepo) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)

	return nil
}

type fakeMaterialRepo struct {
	materials []domain.Material
	batches   [][]domain.Material
	deleted   []string
	err       error
}

func (f *fakeMaterialRepo) GetAll(context.Context) ([]domain.Material, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.materials, nil
}

func (f *fakeMaterialRepo) Save(_ context.Context, material domain.Material) (domain.Material, error) {
	if f.err != nil {
		return domain.Material{}, f.err
	}
	f.materials = append(f.materials, material)

	return material, nil
}

func (f *fakeMaterialRepo) SaveBatch(_ context.Context, materials []domain.Material) error {
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, materials)

	return nil
}

func (f *fakeMaterialRepo) Delete(_ context.Context, productID string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, productID)

	return nil
}

type fakeSalesRepo struct {
	records []domain.SalesRecord
	err     error
}

func (f *fakeSalesRepo) GetAll(context.Context) ([]domain.SalesRecord, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.records, nil
}

func (f *fakeSalesRepo) GetBySKU(_ context.Context, sku string) ([]domain.SalesRecord, error) {
	if f.err != nil {
		return nil, f.err
	}

	var filtered []domain.SalesRecord
	for _, rec := range f.records {
		if rec.SKU == sku {
			filtered = append(filtered, rec)
		}
	}

	return filtered, nil
}

type fakeDistributionRepo struct {
	plans    []domain.DistributionPlan
	pending  int
	executed []string
	err      error
}

func (f *fakeDistributionRepo) GetAll(context.Context) ([]domain.DistributionPlan, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.plans, nil
}

func (f *fakeDistributionRepo) Create(_ context.Context, reference string) (domain.DistributionPlan, error) {
	if f.err != nil {
		return domain.DistributionPlan{}, f.err
	}

	plan := domain.DistributionPlan{
		ID:        fmt.Sprintf("plan-%v", len(f.plans)+1),
		Reference: reference,
		Status:    "pending",
	}
	f.plans = append(f.plans, plan)

	return plan, nil
}

func (f *fakeDistributionRepo) CountPending(context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}

	return f.pending, nil
}

func (f *fakeDistributionRepo) MarkExecuted(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.executed = append(f.executed, id)

	return nil
}
