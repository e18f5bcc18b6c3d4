package repository

import (
	"context"
	"fmt"

	"github.com/supplyline/planning-api/internal/domain"
	"github.com/supplyline/planning-api/internal/repository/dao"
)

var ErrMaterialNotFound = dao.ErrMaterialNotFound

type MaterialDAO interface {
	GetAll(ctx context.Context) ([]dao.Material, error)
	Upsert(ctx context.Context, material dao.Material) (dao.Material, error)
	UpsertBatch(ctx context.Context, materials []dao.Material) error
	Delete(ctx context.Context, productID string) error
}

type MaterialRepository struct {
	dao MaterialDAO
}

func NewMaterialRepository(dao MaterialDAO) *MaterialRepository {
	return &MaterialRepository{
		dao: dao,
	}
}

func (r *MaterialRepository) daoToDomain(m dao.Material) domain.Material {
	return domain.Material{
		ProductID:          m.ProductID,
		ProductDescription: m.ProductDescription,
		Cat:                m.Cat,
		SubCat:             m.SubCat,
		OldProductID:       m.OldProductID,
		ProductType:        m.ProductType,
		IsPlannable:        m.IsPlannable,
		ABCCat:             m.ABCCat,
		NLV:                m.NLV,
		LeadTime:           m.LeadTime,
		MinLotSize:         m.MinLotSize,
		MaxLotSize:         m.MaxLotSize,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func (r *MaterialRepository) domainToDao(m domain.Material) dao.Material {
	return dao.Material{
		ProductID:          m.ProductID,
		ProductDescription: m.ProductDescription,
		Cat:                m.Cat,
		SubCat:             m.SubCat,
		OldProductID:       m.OldProductID,
		ProductType:        m.ProductType,
		IsPlannable:        m.IsPlannable,
		ABCCat:             m.ABCCat,
		NLV:                m.NLV,
		LeadTime:           m.LeadTime,
		MinLotSize:         m.MinLotSize,
		MaxLotSize:         m.MaxLotSize,
	}
}

func (r *MaterialRepository) GetAll(ctx context.Context) ([]domain.Material, error) {
	daoMaterials, err := r.dao.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.GetAll -> %w", err)
	}

	materials := make([]domain.Material, len(daoMaterials))
	for i, m := range daoMaterials {
		materials[i] = r.daoToDomain(m)
	}

	return materials, nil
}

func (r *MaterialRepository) Save(ctx context.Context, material domain.Material) (domain.Material, error) {
	saved, err := r.dao.Upsert(ctx, r.domainToDao(material))
	if err != nil {
		return domain.Material{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(saved), nil
}

func (r *MaterialRepository) SaveBatch(ctx context.Context, materials []domain.Material) error {
	daoMaterials := make([]dao.Material, len(materials))
	for i, m := range materials {
		daoMaterials[i] = r.domainToDao(m)
	}

	if err := r.dao.UpsertBatch(ctx, daoMaterials); err != nil {
		return fmt.Errorf("r.dao.UpsertBatch -> %w", err)
	}

	return nil
}

func (r *MaterialRepository) Delete(ctx context.Context, productID string) error {
	return r.dao.Delete(ctx, productID)
}
