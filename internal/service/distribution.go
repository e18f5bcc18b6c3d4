package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/supplyline/planning-api/internal/domain"
	"github.com/supplyline/planning-api/internal/repository"
)

var ErrDistributionNotFound = repository.ErrDistributionNotFound

type DistributionRepository interface {
	GetAll(ctx context.Context) ([]domain.DistributionPlan, error)
	Create(ctx context.Context, reference string) (domain.DistributionPlan, error)
	CountPending(ctx context.Context) (int, error)
	MarkExecuted(ctx context.Context, id string) error
}

type DistributionService struct {
	repo         DistributionRepository
	activityRepo ActivityRepository
}

func NewDistributionService(repo DistributionRepository, activityRepo ActivityRepository) *DistributionService {
	return &DistributionService{
		repo:         repo,
		activityRepo: activityRepo,
	}
}

func (s *DistributionService) ListPlans(ctx context.Context) ([]domain.DistributionPlan, error) {
	plans, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAll -> %w", err)
	}

	return plans, nil
}

func (s *DistributionService) CreatePlan(ctx context.Context, reference string) (domain.DistributionPlan, error) {
	plan, err := s.repo.Create(ctx, reference)
	if err != nil {
		return domain.DistributionPlan{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if _, err = s.activityRepo.Record(ctx, "Distribution Plan Created", plan.Reference); err != nil {
		zap.L().Warn("failed to record activity", zap.Error(err))
	}

	return plan, nil
}

// ExecutePlan flips a pending plan to executed and stamps the time.
func (s *DistributionService) ExecutePlan(ctx context.Context, id string) error {
	if err := s.repo.MarkExecuted(ctx, id); err != nil {
		return err
	}

	if _, err := s.activityRepo.Record(ctx, "Distribution Plan Executed", id); err != nil {
		zap.L().Warn("failed to record activity", zap.Error(err))
	}

	return nil
}
