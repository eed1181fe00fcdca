package asset

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// Delete removes the metadata row first and only then the physical files. A
// failed row delete surfaces as a storage consistency error and leaves the
// files alone; once the row is gone, file cleanup is best-effort.
func (s *assetService) Delete(ctx context.Context, id int64) error {

	asset, err := s.uow.AssetRepo().FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.uow.AssetRepo().Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrAssetNotFound) {
			return err
		}
		return fmt.Errorf("%w: deleting asset row: %v", domain.ErrStorageConsistency, err)
	}

	s.removeStoredFile(ctx, asset.StoredFileName)
	s.removeStoredFile(ctx, asset.ThumbnailFileName)

	s.publish(ctx, domain.AssetEventDeleted, asset)

	return nil
}
