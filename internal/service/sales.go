package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/supplyline/planning-api/internal/domain"
)

var ErrNoSalesData = errors.New("no sales data")

const (
	defaultForecastWindow = 3
	projectionMonths      = 3
)

type SalesRepository interface {
	GetAll(ctx context.Context) ([]domain.SalesRecord, error)
	GetBySKU(ctx context.Context, sku string) ([]domain.SalesRecord, error)
}

type SalesService struct {
	repo SalesRepository
}

func NewSalesService(repo SalesRepository) *SalesService {
	return &SalesService{
		repo: repo,
	}
}

// History aggregates the raw monthly records into the sales-history
// view: a units series per month, per-SKU series aligned to the same
// months, regional totals, and the headline figures.
func (s *SalesService) History(ctx context.Context) (domain.SalesHistory, error) {
	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return domain.SalesHistory{}, fmt.Errorf("s.repo.GetAll -> %w", err)
	}

	history := domain.SalesHistory{
		Labels:              []string{},
		Sales:               []int{},
		SkuSales:            map[string][]int{},
		RegionalPerformance: []domain.RegionalSales{},
	}
	if len(records) == 0 {
		return history, nil
	}

	months, totals := monthlyTotals(records)
	monthIdx := make(map[string]int, len(months))
	for i, m := range months {
		monthIdx[m] = i
	}

	skuSeries := make(map[string][]int)
	skuTotals := make(map[string]int)
	regionTotals := make(map[string]int)
	for _, rec := range records {
		if _, ok := skuSeries[rec.SKU]; !ok {
			skuSeries[rec.SKU] = make([]int, len(months))
		}
		skuSeries[rec.SKU][monthIdx[rec.Month]] += rec.Units
		skuTotals[rec.SKU] += rec.Units
		regionTotals[rec.Region] += rec.Units
	}

	history.Labels = monthLabels(months)
	history.Sales = totals
	history.SkuSales = skuSeries
	history.TotalSales30d = totals[len(totals)-1]
	history.MonthOverMonth = changePercent(totals)

	history.TopSKU = maxKey(skuTotals)
	history.TopSKUChange = changePercent(skuSeries[history.TopSKU])

	grand := 0
	for _, t := range totals {
		grand += t
	}
	history.TopRegion = maxKey(regionTotals)
	if grand > 0 {
		share := float64(regionTotals[history.TopRegion]) / float64(grand) * 100
		history.TopRegionPercent = fmt.Sprintf("%.0f%%", share)
	}

	for region, sales := range regionTotals {
		history.RegionalPerformance = append(history.RegionalPerformance, domain.RegionalSales{
			Region: region,
			Sales:  sales,
		})
	}
	sort.Slice(history.RegionalPerformance, func(i, j int) bool {
		a, b := history.RegionalPerformance[i], history.RegionalPerformance[j]
		if a.Sales != b.Sales {
			return a.Sales > b.Sales
		}
		return a.Region < b.Region
	})

	return history, nil
}

// Forecast projects the next few months with a moving average over the
// monthly totals, for a single SKU or for everything when sku is empty.
func (s *SalesService) Forecast(ctx context.Context, sku string, window int) (domain.SalesForecast, error) {
	var (
		records []domain.SalesRecord
		err     error
	)
	if sku == "" {
		records, err = s.repo.GetAll(ctx)
	} else {
		records, err = s.repo.GetBySKU(ctx, sku)
	}
	if err != nil {
		return domain.SalesForecast{}, fmt.Errorf("fetch sales records -> %w", err)
	}
	if len(records) == 0 {
		return domain.SalesForecast{}, ErrNoSalesData
	}

	if window <= 0 {
		window = defaultForecastWindow
	}

	months, totals := monthlyTotals(records)
	if window > len(totals) {
		window = len(totals)
	}

	work := append([]int(nil), totals...)
	projected := make([]int, 0, projectionMonths)
	for i := 0; i < projectionMonths; i++ {
		next := movingAverage(work, window)
		projected = append(projected, next)
		work = append(work, next)
	}

	labels := monthLabels(months)
	labels = append(labels, nextMonthLabels(months[len(months)-1], projectionMonths)...)

	return domain.SalesForecast{
		SKU:       sku,
		Labels:    labels,
		History:   totals,
		Projected: projected,
		Window:    window,
	}, nil
}

// monthlyTotals collapses records into a sorted unique month axis and
// the total units per month. Month keys sort chronologically because
// they are "2006-01" strings.
func monthlyTotals(records []domain.SalesRecord) ([]string, []int) {
	byMonth := make(map[string]int)
	for _, rec := range records {
		byMonth[rec.Month] += rec.Units
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	totals := make([]int, len(months))
	for i, m := range months {
		totals[i] = byMonth[m]
	}

	return months, totals
}

func movingAverage(series []int, window int) int {
	if window <= 0 || window > len(series) {
		window = len(series)
	}
	sum := 0
	for _, v := range series[len(series)-window:] {
		sum += v
	}

	return int(math.Round(float64(sum) / float64(window)))
}

// forecastAccuracy backtests the moving average over the series and
// reports 100 minus the mean absolute percentage error, clamped to
// [0, 100]. Zero-actual months are skipped to avoid dividing by zero.
func forecastAccuracy(series []int, window int) float64 {
	if window <= 0 || len(series) <= window {
		return 0
	}

	sumAPE := 0.0
	n := 0
	for i := window; i < len(series); i++ {
		actual := series[i]
		if actual == 0 {
			continue
		}
		predicted := movingAverage(series[:i], window)
		sumAPE += math.Abs(float64(actual-predicted)) / float64(actual)
		n++
	}
	if n == 0 {
		return 0
	}

	accuracy := 100 * (1 - sumAPE/float64(n))

	return math.Max(0, math.Min(100, accuracy))
}

// changePercent formats the last-over-previous change of a series as a
// signed percentage, or "n/a" when there is nothing to compare.
func changePercent(series []int) string {
	if len(series) < 2 || series[len(series)-2] == 0 {
		return "n/a"
	}
	prev := float64(series[len(series)-2])
	last := float64(series[len(series)-1])

	return fmt.Sprintf("%+.1f%%", (last-prev)/prev*100)
}

func maxKey(totals map[string]int) string {
	best := ""
	for key, total := range totals {
		if best == "" || total > totals[best] || (total == totals[best] && key < best) {
			best = key
		}
	}

	return best
}

func monthLabels(months []string) []string {
	labels := make([]string, len(months))
	for i, m := range months {
		labels[i] = monthLabel(m)
	}

	return labels
}

func monthLabel(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}

	return t.Format("Jan")
}

func nextMonthLabels(lastMonth string, count int) []string {
	labels := make([]string, 0, count)
	t, err := time.Parse("2006-01", lastMonth)
	if err != nil {
		for i := 1; i <= count; i++ {
			labels = append(labels, fmt.Sprintf("+%v", i))
		}
		return labels
	}

	for i := 1; i <= count; i++ {
		labels = append(labels, t.AddDate(0, i, 0).Format("Jan"))
	}

	return labels
}
