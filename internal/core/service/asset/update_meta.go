package asset

import (
	"context"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// UpdateMeta applies a partial metadata update. Nil fields are left as they
// are; non-nil fields overwrite, explicitly empty values included. An update
// with every field omitted returns the asset unchanged.
func (s *assetService) UpdateMeta(ctx context.Context, id int64, update domain.AssetMetaUpdate) (*domain.Asset, error) {

	asset, err := s.uow.AssetRepo().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.IsEmpty() {
		return asset, nil
	}

	if update.Description != nil {
		asset.Description = *update.Description
	}
	if update.Title != nil {
		asset.Title = *update.Title
	}
	if update.Intro != nil {
		asset.Intro = *update.Intro
	}
	if update.Genre != nil {
		asset.Genre = *update.Genre
	}
	if update.Year != nil {
		asset.Year = update.Year
	}
	if update.MovieID != nil {
		asset.MovieID = update.MovieID
	}

	if err := s.uow.AssetRepo().Update(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}
