package repository

import (
	"context"
	"fmt"

	"github.com/supplyline/planning-api/internal/domain"
	"github.com/supplyline/planning-api/internal/repository/dao"
)

type ActivityDAO interface {
	Insert(ctx context.Context, activity dao.Activity) (dao.Activity, error)
	GetRecent(ctx context.Context, limit int) ([]dao.Activity, error)
}

type ActivityRepository struct {
	dao ActivityDAO
}

func NewActivityRepository(dao ActivityDAO) *ActivityRepository {
	return &ActivityRepository{
		dao: dao,
	}
}

func (r *ActivityRepository) Record(ctx context.Context, action, details string) (domain.Activity, error) {
	created, err := r.dao.Insert(ctx, dao.Activity{Action: action, Details: details})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return domain.Activity{
		ID:        created.ID,
		Action:    created.Action,
		Details:   created.Details,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (r *ActivityRepository) GetRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	daoActivities, err := r.dao.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.GetRecent -> %w", err)
	}

	activities := make([]domain.Activity, len(daoActivities))
	for i, a := range daoActivities {
		activities[i] = domain.Activity{
			ID:        a.ID,
			Action:    a.Action,
			Details:   a.Details,
			CreatedAt: a.CreatedAt,
		}
	}

	return activities, nil
}
