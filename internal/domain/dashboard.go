package domain

import "time"

// Activity is one row of the dashboard's recent-activity feed.
type Activity struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"time"`
}

type DashboardStats struct {
	ForecastAccuracy     float64    `json:"forecastAccuracy"`
	StockOnHand          int        `json:"stockOnHand"`
	PendingDistributions int        `json:"pendingDistributions"`
	LowSkuCount          int        `json:"lowSkuCount"`
	RecentActivity       []Activity `json:"recentActivity"`
}
