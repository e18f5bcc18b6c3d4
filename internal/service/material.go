package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/supplyline/planning-api/internal/domain"
	"github.com/supplyline/planning-api/internal/repository"
)

var (
	ErrMaterialNotFound = repository.ErrMaterialNotFound
	ErrEmptyImport      = fmt.Errorf("import contains no data rows")
)

type MaterialRepository interface {
	GetAll(ctx context.Context) ([]domain.Material, error)
	Save(ctx context.Context, material domain.Material) (domain.Material, error)
	SaveBatch(ctx context.Context, materials []domain.Material) error
	Delete(ctx context.Context, productID string) error
}

// ImportValidationError rejects a whole upload, keyed by 1-based data
// row number so the response can point at the offending cells.
type ImportValidationError struct {
	Rows map[int]error
}

func (e *ImportValidationError) Error() string {
	return fmt.Sprintf("%v invalid rows", len(e.Rows))
}

type MaterialService struct {
	repo         MaterialRepository
	activityRepo ActivityRepository
}

func NewMaterialService(repo MaterialRepository, activityRepo ActivityRepository) *MaterialService {
	return &MaterialService{
		repo:         repo,
		activityRepo: activityRepo,
	}
}

func (s *MaterialService) ListMaterials(ctx context.Context) ([]domain.Material, error) {
	materials, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAll -> %w", err)
	}

	return materials, nil
}

func (s *MaterialService) SaveMaterial(ctx context.Context, material domain.Material) (domain.Material, error) {
	saved, err := s.repo.Save(ctx, material)
	if err != nil {
		return domain.Material{}, fmt.Errorf("s.repo.Save -> %w", err)
	}

	if _, err = s.activityRepo.Record(ctx, "Material Saved", saved.ProductID); err != nil {
		zap.L().Warn("failed to record activity", zap.Error(err))
	}

	return saved, nil
}

func (s *MaterialService) DeleteMaterial(ctx context.Context, productID string) error {
	if err := s.repo.Delete(ctx, productID); err != nil {
		return err
	}

	if _, err := s.activityRepo.Record(ctx, "Material Deleted", productID); err != nil {
		zap.L().Warn("failed to record activity", zap.Error(err))
	}

	return nil
}

// ImportMaterials validates every row up front and rejects the whole
// batch if any row is invalid. Duplicate product IDs within the batch
// keep the later occurrence, and the surviving rows upsert over
// whatever the collection already holds.
func (s *MaterialService) ImportMaterials(ctx context.Context, rows []MaterialRow, source string) (int, error) {
	if len(rows) == 0 {
		return 0, ErrEmptyImport
	}

	rowErrs := make(map[int]error)
	for i := range rows {
		if err := rows[i].Validate(); err != nil {
			rowErrs[i+1] = err
		}
	}
	if len(rowErrs) > 0 {
		return 0, &ImportValidationError{Rows: rowErrs}
	}

	indexByID := make(map[string]int)
	materials := make([]domain.Material, 0, len(rows))
	for i := range rows {
		m := rows[i].ToDomain()
		if idx, ok := indexByID[m.ProductID]; ok {
			materials[idx] = m
			continue
		}
		indexByID[m.ProductID] = len(materials)
		materials = append(materials, m)
	}

	if err := s.repo.SaveBatch(ctx, materials); err != nil {
		return 0, fmt.Errorf("s.repo.SaveBatch -> %w", err)
	}

	if _, err := s.activityRepo.Record(ctx, "Data Uploaded",
		fmt.Sprintf("%v: %v rows", source, len(materials))); err != nil {
		zap.L().Warn("failed to record activity", zap.Error(err))
	}

	return len(materials), nil
}
