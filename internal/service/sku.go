package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/supplyline/planning-api/internal/domain"
	"github.com/supplyline/planning-api/internal/repository"
)

var ErrSkuExists = repository.ErrSkuExists

type SkuRepository interface {
	GetAll(ctx context.Context) ([]domain.Sku, error)
	Create(ctx context.Context, sku domain.Sku) (domain.Sku, error)
	BulkReplaceAssignments(ctx context.Context, batch []domain.SkuAssignment) error
}

type SkuService struct {
	repo          SkuRepository
	warehouseRepo WarehouseRepository
	activityRepo  ActivityRepository
}

func NewSkuService(repo SkuRepository, warehouseRepo WarehouseRepository, activityRepo ActivityRepository) *SkuService {
	return &SkuService{
		repo:          repo,
		warehouseRepo: warehouseRepo,
		activityRepo:  activityRepo,
	}
}

func (s *SkuService) ListSkus(ctx context.Context) ([]domain.Sku, error) {
	skus, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAll -> %w", err)
	}

	return skus, nil
}

func (s *SkuService) CreateSku(ctx context.Context, sku domain.Sku) (domain.Sku, error) {
	created, err := s.repo.Create(ctx, sku)
	if err != nil {
		return domain.Sku{}, err
	}

	return created, nil
}

// BulkAssignWarehouses replaces the warehouse set of every SKU in the
// batch, all-or-nothing. Warehouse IDs that are not in the current
// warehouse collection are dropped during normalization so stored sets
// only ever reference known warehouses; unknown SKU IDs are ignored by
// the storage layer.
func (s *SkuService) BulkAssignWarehouses(ctx context.Context, batch []domain.SkuAssignment) error {
	warehouses, err := s.warehouseRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("s.warehouseRepo.GetAll -> %w", err)
	}

	known := domain.NewWarehouseSet()
	for _, w := range warehouses {
		known.Add(w.ID)
	}

	normalized := make([]domain.SkuAssignment, len(batch))
	for i, a := range batch {
		set := domain.NewWarehouseSet()
		for _, id := range a.Warehouses.IDs() {
			if known.Has(id) {
				set.Add(id)
			}
		}
		normalized[i] = domain.SkuAssignment{SkuID: a.SkuID, Warehouses: set}
	}

	if err = s.repo.BulkReplaceAssignments(ctx, normalized); err != nil {
		return fmt.Errorf("s.repo.BulkReplaceAssignments -> %w", err)
	}

	// The activity feed is informational; a write failure must not fail
	// the save that already happened.
	if _, err = s.activityRepo.Record(ctx, "Warehouse Assignments Saved",
		fmt.Sprintf("%v SKUs updated", len(normalized))); err != nil {
		zap.L().Warn("failed to record activity", zap.Error(err))
	}

	return nil
}
