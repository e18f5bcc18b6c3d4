package repository

import (
	"context"
	"fmt"

	"github.com/supplyline/planning-api/internal/domain"
	"github.com/supplyline/planning-api/internal/repository/dao"
)

type SalesDAO interface {
	GetAll(ctx context.Context) ([]dao.SalesRecord, error)
	GetBySKU(ctx context.Context, sku string) ([]dao.SalesRecord, error)
}

type SalesRepository struct {
	dao SalesDAO
}

func NewSalesRepository(dao SalesDAO) *SalesRepository {
	return &SalesRepository{
		dao: dao,
	}
}

func (r *SalesRepository) daoToDomain(s dao.SalesRecord) domain.SalesRecord {
	return domain.SalesRecord{
		ID:      s.ID,
		SKU:     s.SKU,
		Region:  s.Region,
		Month:   s.Month,
		Units:   s.Units,
		Revenue: s.Revenue,
	}
}

func (r *SalesRepository) GetAll(ctx context.Context) ([]domain.SalesRecord, error) {
	daoRecords, err := r.dao.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.GetAll -> %w", err)
	}

	records := make([]domain.SalesRecord, len(daoRecords))
	for i, rec := range daoRecords {
		records[i] = r.daoToDomain(rec)
	}

	return records, nil
}

func (r *SalesRepository) GetBySKU(ctx context.Context, sku string) ([]domain.SalesRecord, error) {
	daoRecords, err := r.dao.GetBySKU(ctx, sku)
	if err != nil {
		return nil, fmt.Errorf("r.dao.GetBySKU -> %w", err)
	}

	records := make([]domain.SalesRecord, len(daoRecords))
	for i, rec := range daoRecords {
		records[i] = r.daoToDomain(rec)
	}

	return records, nil
}
