package repository

import (
	"context"
	"fmt"

	"github.com/supplyline/planning-api/internal/domain"
	"github.com/supplyline/planning-api/internal/repository/dao"
)

var (
	ErrWarehouseExists   = dao.ErrWarehouseExists
	ErrWarehouseNotFound = dao.ErrWarehouseNotFound
)

type WarehouseDAO interface {
	GetAll(ctx context.Context) ([]dao.Warehouse, error)
	Insert(ctx context.Context, warehouse dao.Warehouse) (dao.Warehouse, error)
	Delete(ctx context.Context, id string) error
}

type WarehouseRepository struct {
	dao WarehouseDAO
}

func NewWarehouseRepository(dao WarehouseDAO) *WarehouseRepository {
	return &WarehouseRepository{
		dao: dao,
	}
}

func (r *WarehouseRepository) daoToDomain(w dao.Warehouse) domain.Warehouse {
	return domain.Warehouse{
		ID:                w.ID,
		Code:              w.Code,
		Name:              w.Name,
		Location:          w.Location,
		SalesRegion:       w.SalesRegion,
		IsMotherWarehouse: w.IsMotherWarehouse,
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
	}
}

func (r *WarehouseRepository) domainToDao(w domain.Warehouse) dao.Warehouse {
	return dao.Warehouse{
		ID:                w.ID,
		Code:              w.Code,
		Name:              w.Name,
		Location:          w.Location,
		SalesRegion:       w.SalesRegion,
		IsMotherWarehouse: w.IsMotherWarehouse,
	}
}

func (r *WarehouseRepository) GetAll(ctx context.Context) ([]domain.Warehouse, error) {
	daoWarehouses, err := r.dao.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.GetAll -> %w", err)
	}

	warehouses := make([]domain.Warehouse, len(daoWarehouses))
	for i, w := range daoWarehouses {
		warehouses[i] = r.daoToDomain(w)
	}

	return warehouses, nil
}

func (r *WarehouseRepository) Create(ctx context.Context, warehouse domain.Warehouse) (domain.Warehouse, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(warehouse))
	if err != nil {
		return domain.Warehouse{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *WarehouseRepository) Delete(ctx context.Context, id string) error {
	return r.dao.Delete(ctx, id)
}
