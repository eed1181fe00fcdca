package asset

import (
	"context"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// List returns one page of assets matching the filter, ordered by id
// descending so that pagination stays stable as new uploads arrive.
// pageNumber is clamped to >= 1 and pageSize to [1, MaxPageSize], defaulting
// to DefaultPageSize when not positive.
func (s *assetService) List(ctx context.Context, filter domain.AssetFilter, pageNumber, pageSize int) (*domain.AssetPage, error) {

	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = s.uploadCfg.DefaultPageSize
	}
	if pageSize > s.uploadCfg.MaxPageSize {
		pageSize = s.uploadCfg.MaxPageSize
	}

	offset := (pageNumber - 1) * pageSize
	items, totalCount, err := s.uow.AssetRepo().FindPage(ctx, filter, offset, pageSize)
	if err != nil {
		return nil, err
	}

	return &domain.AssetPage{
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: (totalCount + pageSize - 1) / pageSize,
		Items:      items,
	}, nil
}
