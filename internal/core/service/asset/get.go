package asset

import (
	"context"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// Get returns one asset by id.
func (s *assetService) Get(ctx context.Context, id int64) (*domain.Asset, error) {
	return s.uow.AssetRepo().FindByID(ctx, id)
}

// ListAll returns every asset row, newest first, without pagination.
func (s *assetService) ListAll(ctx context.Context) ([]domain.Asset, error) {
	return s.uow.AssetRepo().FindAll(ctx)
}
