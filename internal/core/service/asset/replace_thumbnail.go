package asset

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// ReplaceThumbnail swaps the preview image of an asset for a caller-provided
// one. Only image extensions are accepted and the size cap is the thumbnail
// limit, not the upload limit. The previous thumbnail is deleted best-effort.
func (s *assetService) ReplaceThumbnail(ctx context.Context, id int64, content io.Reader, originalFileName string, sizeBytes int64) (*domain.Asset, error) {

	if err := domain.NewValidationError(validateThumbnailUpload(originalFileName, sizeBytes, s.uploadCfg.MaxThumbnailSize)); err != nil {
		return nil, err
	}

	asset, err := s.uow.AssetRepo().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.removeStoredFile(ctx, asset.ThumbnailFileName)

	ext := strings.ToLower(filepath.Ext(originalFileName))
	thumbName := newStoredName(ext)

	if _, err := s.store.Save(ctx, thumbName, content); err != nil {
		return nil, fmt.Errorf("saving thumbnail: %w", err)
	}

	asset.ThumbnailFileName = thumbName

	if err := s.uow.AssetRepo().Update(ctx, asset); err != nil {
		s.logger.Warn("asset row update failed after thumbnail replacement", "asset_id", id, "stored_name", thumbName, "error", err)
		return nil, fmt.Errorf("updating asset row: %w", err)
	}

	return asset, nil
}
