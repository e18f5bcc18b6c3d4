package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/supplyline/planning-api/internal/domain"
	"github.com/supplyline/planning-api/internal/repository"
)

var (
	ErrWarehouseExists   = repository.ErrWarehouseExists
	ErrWarehouseNotFound = repository.ErrWarehouseNotFound
)

type WarehouseRepository interface {
	GetAll(ctx context.Context) ([]domain.Warehouse, error)
	Create(ctx context.Context, warehouse domain.Warehouse) (domain.Warehouse, error)
	Delete(ctx context.Context, id string) error
}

type WarehouseService struct {
	repo         WarehouseRepository
	activityRepo ActivityRepository
}

func NewWarehouseService(repo WarehouseRepository, activityRepo ActivityRepository) *WarehouseService {
	return &WarehouseService{
		repo:         repo,
		activityRepo: activityRepo,
	}
}

func (s *WarehouseService) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	warehouses, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAll -> %w", err)
	}

	return warehouses, nil
}

func (s *WarehouseService) CreateWarehouse(ctx context.Context, warehouse domain.Warehouse) (domain.Warehouse, error) {
	if warehouse.ID == "" {
		warehouse.ID = uuid.NewString()
	}
	if warehouse.Code == "" {
		warehouse.Code = warehouse.Name
	}

	created, err := s.repo.Create(ctx, warehouse)
	if err != nil {
		return domain.Warehouse{}, err
	}

	if _, err = s.activityRepo.Record(ctx, "Warehouse Created", created.Name); err != nil {
		zap.L().Warn("failed to record activity", zap.Error(err))
	}

	return created, nil
}

// DeleteWarehouse removes the warehouse together with every SKU
// assignment that references it.
func (s *WarehouseService) DeleteWarehouse(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if _, err := s.activityRepo.Record(ctx, "Warehouse Deleted", id); err != nil {
		zap.L().Warn("failed to record activity", zap.Error(err))
	}

	return nil
}
