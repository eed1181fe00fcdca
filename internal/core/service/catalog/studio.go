package catalog

import (
	"context"
	"strings"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// CreateStudio inserts a new studio
func (s *catalogService) CreateStudio(ctx context.Context, studio *domain.Studio) (*domain.Studio, error) {
	if strings.TrimSpace(studio.Name) == "" {
		return nil, domain.NewValidationError([]domain.FieldError{
			{Field: "name", Message: "name is required"},
		})
	}

	if err := s.uow.StudioRepo().Create(ctx, studio); err != nil {
		return nil, err
	}
	return studio, nil
}

// GetStudio returns one studio
func (s *catalogService) GetStudio(ctx context.Context, id int64) (*domain.Studio, error) {
	return s.uow.StudioRepo().FindByID(ctx, id)
}

// ListStudios returns every studio
func (s *catalogService) ListStudios(ctx context.Context) ([]domain.Studio, error) {
	return s.uow.StudioRepo().FindAll(ctx)
}

// UpdateStudio overwrites a studio
func (s *catalogService) UpdateStudio(ctx context.Context, studio *domain.Studio) (*domain.Studio, error) {
	if strings.TrimSpace(studio.Name) == "" {
		return nil, domain.NewValidationError([]domain.FieldError{
			{Field: "name", Message: "name is required"},
		})
	}

	if err := s.uow.StudioRepo().Update(ctx, studio); err != nil {
		return nil, err
	}
	return studio, nil
}

// DeleteStudio removes a studio unless movies still reference it
func (s *catalogService) DeleteStudio(ctx context.Context, id int64) error {
	return s.uow.StudioRepo().Delete(ctx, id)
}
