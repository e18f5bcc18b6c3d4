package domain

import "time"

type DistributionPlan struct {
	ID         string     `json:"id"`
	Reference  string     `json:"reference"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ExecutedAt *time.Time `json:"executed_at,omitempty"`
}
