package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/supplyline/planning-api/internal/domain"
	"github.com/supplyline/planning-api/internal/repository/dao"
)

var ErrDistributionNotFound = dao.ErrDistributionNotFound

type DistributionDAO interface {
	GetAll(ctx context.Context) ([]dao.DistributionPlan, error)
	Insert(ctx context.Context, plan dao.DistributionPlan) (dao.DistributionPlan, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	MarkExecuted(ctx context.Context, id string, executedAt time.Time) error
}

type DistributionRepository struct {
	dao DistributionDAO
}

func NewDistributionRepository(dao DistributionDAO) *DistributionRepository {
	return &DistributionRepository{
		dao: dao,
	}
}

func (r *DistributionRepository) daoToDomain(p dao.DistributionPlan) domain.DistributionPlan {
	return domain.DistributionPlan{
		ID:         p.ID,
		Reference:  p.Reference,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
		ExecutedAt: p.ExecutedAt,
	}
}

func (r *DistributionRepository) GetAll(ctx context.Context) ([]domain.DistributionPlan, error) {
	daoPlans, err := r.dao.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.GetAll -> %w", err)
	}

	plans := make([]domain.DistributionPlan, len(daoPlans))
	for i, p := range daoPlans {
		plans[i] = r.daoToDomain(p)
	}

	return plans, nil
}

func (r *DistributionRepository) Create(ctx context.Context, reference string) (domain.DistributionPlan, error) {
	created, err := r.dao.Insert(ctx, dao.DistributionPlan{Reference: reference})
	if err != nil {
		return domain.DistributionPlan{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *DistributionRepository) CountPending(ctx context.Context) (int, error) {
	count, err := r.dao.CountByStatus(ctx, dao.DistributionPending)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByStatus -> %w", err)
	}

	return int(count), nil
}

func (r *DistributionRepository) MarkExecuted(ctx context.Context, id string) error {
	return r.dao.MarkExecuted(ctx, id, time.Now())
}
