package service

import (
	"context"
	"fmt"
	"math"

	"github.com/supplyline/planning-api/internal/domain"
)

const (
	// Matches the low-stock badge threshold on the SKU table.
	lowStockThreshold = 100

	recentActivityLimit = 10
)

type ActivityRepository interface {
	Record(ctx context.Context, action, details string) (domain.Activity, error)
	GetRecent(ctx context.Context, limit int) ([]domain.Activity, error)
}

type DashboardService struct {
	skuRepo          SkuRepository
	salesRepo        SalesRepository
	distributionRepo DistributionRepository
	activityRepo     ActivityRepository
}

func NewDashboardService(
	skuRepo SkuRepository,
	salesRepo SalesRepository,
	distributionRepo DistributionRepository,
	activityRepo ActivityRepository,
) *DashboardService {
	return &DashboardService{
		skuRepo:          skuRepo,
		salesRepo:        salesRepo,
		distributionRepo: distributionRepo,
		activityRepo:     activityRepo,
	}
}

func (s *DashboardService) GetStats(ctx context.Context) (domain.DashboardStats, error) {
	skus, err := s.skuRepo.GetAll(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.skuRepo.GetAll -> %w", err)
	}

	stats := domain.DashboardStats{
		RecentActivity: []domain.Activity{},
	}
	for _, sku := range skus {
		stats.StockOnHand += sku.Stock
		if sku.Stock < lowStockThreshold {
			stats.LowSkuCount++
		}
	}

	pending, err := s.distributionRepo.CountPending(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.distributionRepo.CountPending -> %w", err)
	}
	stats.PendingDistributions = pending

	records, err := s.salesRepo.GetAll(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.salesRepo.GetAll -> %w", err)
	}
	_, totals := monthlyTotals(records)
	stats.ForecastAccuracy = math.Round(forecastAccuracy(totals, defaultForecastWindow)*10) / 10

	recent, err := s.activityRepo.GetRecent(ctx, recentActivityLimit)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.activityRepo.GetRecent -> %w", err)
	}
	if recent != nil {
		stats.RecentActivity = recent
	}

	return stats, nil
}
