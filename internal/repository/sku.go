package repository

import (
	"context"
	"fmt"

	"github.com/supplyline/planning-api/internal/domain"
	"github.com/supplyline/planning-api/internal/repository/dao"
)

var ErrSkuExists = dao.ErrSkuExists

type SkuDAO interface {
	GetAll(ctx context.Context) ([]dao.Sku, error)
	Insert(ctx context.Context, sku dao.Sku) (dao.Sku, error)
	ReplaceAssignments(ctx context.Context, assignments map[uint][]string) error
}

type SkuRepository struct {
	dao SkuDAO
}

func NewSkuRepository(dao SkuDAO) *SkuRepository {
	return &SkuRepository{
		dao: dao,
	}
}

func (r *SkuRepository) daoToDomain(s dao.Sku) domain.Sku {
	warehouses := domain.NewWarehouseSet()
	for _, a := range s.Assignments {
		warehouses.Add(a.WarehouseID)
	}

	return domain.Sku{
		ID:         s.ID,
		SKU:        s.SKU,
		Name:       s.Name,
		Category:   s.Category,
		Brand:      s.Brand,
		Price:      s.Price,
		Stock:      s.Stock,
		Warehouses: warehouses,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func (r *SkuRepository) domainToDao(s domain.Sku) dao.Sku {
	return dao.Sku{
		ID:       s.ID,
		SKU:      s.SKU,
		Name:     s.Name,
		Category: s.Category,
		Brand:    s.Brand,
		Price:    s.Price,
		Stock:    s.Stock,
	}
}

func (r *SkuRepository) GetAll(ctx context.Context) ([]domain.Sku, error) {
	daoSkus, err := r.dao.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.GetAll -> %w", err)
	}

	skus := make([]domain.Sku, len(daoSkus))
	for i, s := range daoSkus {
		skus[i] = r.daoToDomain(s)
	}

	return skus, nil
}

func (r *SkuRepository) Create(ctx context.Context, sku domain.Sku) (domain.Sku, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(sku))
	if err != nil {
		return domain.Sku{}, err
	}

	return r.daoToDomain(created), nil
}

// BulkReplaceAssignments overwrites each listed SKU's warehouse set in
// one atomic batch.
func (r *SkuRepository) BulkReplaceAssignments(ctx context.Context, batch []domain.SkuAssignment) error {
	assignments := make(map[uint][]string, len(batch))
	for _, a := range batch {
		assignments[a.SkuID] = a.Warehouses.IDs()
	}

	if err := r.dao.ReplaceAssignments(ctx, assignments); err != nil {
		return fmt.Errorf("r.dao.ReplaceAssignments -> %w", err)
	}

	return nil
}
