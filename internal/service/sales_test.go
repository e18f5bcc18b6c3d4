package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplyline/planning-api/internal/domain"
)

func salesFixture() []domain.SalesRecord {
	return []domain.SalesRecord{
		{SKU: "SKU001", Region: "West", Month: "2026-01", Units: 100},
		{SKU: "SKU001", Region: "East", Month: "2026-02", Units: 120},
		{SKU: "SKU001", Region: "West", Month: "2026-03", Units: 150},
		{SKU: "SKU002", Region: "South", Month: "2026-01", Units: 40},
		{SKU: "SKU002", Region: "South", Month: "2026-02", Units: 30},
		{SKU: "SKU002", Region: "South", Month: "2026-03", Units: 50},
	}
}

func TestSalesService_History(t *testing.T) {
	t.Run("aggregates months, SKUs and regions", func(t *testing.T) {
		svc := NewSalesService(&fakeSalesRepo{records: salesFixture()})

		history, err := svc.History(context.Background())
		require.NoError(t, err)

		assert.Equal(t, []string{"Jan", "Feb", "Mar"}, history.Labels)
		assert.Equal(t, []int{140, 150, 200}, history.Sales)
		assert.Equal(t, 200, history.TotalSales30d)

		// 150 -> 200 is a third up.
		assert.Equal(t, "+33.3%", history.MonthOverMonth)

		assert.Equal(t, "SKU001", history.TopSKU)
		assert.Equal(t, []int{100, 120, 150}, history.SkuSales["SKU001"])
		assert.Equal(t, []int{40, 30, 50}, history.SkuSales["SKU002"])
		assert.Equal(t, "+25.0%", history.TopSKUChange)

		// West 250 of 490 total.
		assert.Equal(t, "West", history.TopRegion)
		assert.Equal(t, "51%", history.TopRegionPercent)

		require.Len(t, history.RegionalPerformance, 3)
		assert.Equal(t, domain.RegionalSales{Region: "West", Sales: 250}, history.RegionalPerformance[0])
	})

	t.Run("empty dataset renders an empty page, not an error", func(t *testing.T) {
		svc := NewSalesService(&fakeSalesRepo{})

		history, err := svc.History(context.Background())
		require.NoError(t, err)
		assert.Empty(t, history.Labels)
		assert.Empty(t, history.Sales)
		assert.NotNil(t, history.SkuSales)
		assert.Equal(t, 0, history.TotalSales30d)
	})

	t.Run("single month has no comparison", func(t *testing.T) {
		svc := NewSalesService(&fakeSalesRepo{records: []domain.SalesRecord{
			{SKU: "SKU001", Region: "West", Month: "2026-01", Units: 100},
		}})

		history, err := svc.History(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "n/a", history.MonthOverMonth)
	})
}

func TestSalesService_Forecast(t *testing.T) {
	t.Run("projects three months with the default window", func(t *testing.T) {
		svc := NewSalesService(&fakeSalesRepo{records: salesFixture()})

		forecast, err := svc.Forecast(context.Background(), "", 0)
		require.NoError(t, err)

		assert.Equal(t, 3, forecast.Window)
		assert.Equal(t, []int{140, 150, 200}, forecast.History)

		// avg(140,150,200)=163, avg(150,200,163)=171, avg(200,163,171)=178
		assert.Equal(t, []int{163, 171, 178}, forecast.Projected)
		assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}, forecast.Labels)
	})

	t.Run("filters by SKU", func(t *testing.T) {
		svc := NewSalesService(&fakeSalesRepo{records: salesFixture()})

		forecast, err := svc.Forecast(context.Background(), "SKU002", 2)
		require.NoError(t, err)

		assert.Equal(t, "SKU002", forecast.SKU)
		assert.Equal(t, 2, forecast.Window)
		assert.Equal(t, []int{40, 30, 50}, forecast.History)
		// avg(30,50)=40, avg(50,40)=45, avg(40,45)=43 (rounds up from 42.5)
		assert.Equal(t, []int{40, 45, 43}, forecast.Projected)
	})

	t.Run("window larger than the series is clamped", func(t *testing.T) {
		svc := NewSalesService(&fakeSalesRepo{records: salesFixture()})

		forecast, err := svc.Forecast(context.Background(), "", 12)
		require.NoError(t, err)
		assert.Equal(t, 3, forecast.Window)
	})

	t.Run("unknown SKU has no data", func(t *testing.T) {
		svc := NewSalesService(&fakeSalesRepo{records: salesFixture()})

		_, err := svc.Forecast(context.Background(), "SKU999", 0)
		require.ErrorIs(t, err, ErrNoSalesData)
	})
}

func TestForecastAccuracy(t *testing.T) {
	t.Run("perfect forecast scores 100", func(t *testing.T) {
		assert.InDelta(t, 100, forecastAccuracy([]int{50, 50, 50, 50, 50}, 3), 0.001)
	})

	t.Run("short series scores zero", func(t *testing.T) {
		assert.Zero(t, forecastAccuracy([]int{50, 60}, 3))
		assert.Zero(t, forecastAccuracy(nil, 3))
	})

	t.Run("errors lower the score", func(t *testing.T) {
		acc := forecastAccuracy([]int{100, 100, 100, 200}, 3)
		assert.Greater(t, acc, 0.0)
		assert.Less(t, acc, 100.0)
	})

	t.Run("never goes below zero", func(t *testing.T) {
		acc := forecastAccuracy([]int{1000, 1000, 1000, 1}, 3)
		assert.GreaterOrEqual(t, acc, 0.0)
	})
}

func TestMovingAverage(t *testing.T) {
	assert.Equal(t, 20, movingAverage([]int{10, 20, 30}, 3))
	assert.Equal(t, 25, movingAverage([]int{10, 20, 30}, 2))
	assert.Equal(t, 30, movingAverage([]int{10, 20, 30}, 1))
	assert.Equal(t, 20, movingAverage([]int{10, 20, 30}, 10), "oversized window uses the whole series")
}
