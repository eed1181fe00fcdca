package asset

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// ReplaceFile swaps the physical file behind an existing asset. The old main
// file and thumbnail are deleted best-effort before the new file is written;
// the row keeps its id and gains a freshly generated stored name. A blank or
// whitespace description leaves the stored description untouched.
func (s *assetService) ReplaceFile(ctx context.Context, id int64, content io.Reader, originalFileName string, sizeBytes int64, description string) (*domain.Asset, error) {

	asset, err := s.uow.AssetRepo().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.NewValidationError(validateUpload(originalFileName, sizeBytes, s.uploadCfg.MaxFileSize)); err != nil {
		return nil, err
	}

	s.removeStoredFile(ctx, asset.StoredFileName)
	s.removeStoredFile(ctx, asset.ThumbnailFileName)

	ext := strings.ToLower(filepath.Ext(originalFileName))
	storedName := newStoredName(ext)

	written, err := s.store.Save(ctx, storedName, content)
	if err != nil {
		return nil, fmt.Errorf("saving replacement file: %w", err)
	}

	asset.StoredFileName = storedName
	asset.FileExtension = ext
	asset.SizeBytes = written
	asset.ThumbnailFileName = ""
	if asset.IsVideo() {
		asset.ThumbnailFileName = s.deriveThumbnail(ctx, storedName)
	}
	if trimmed := strings.TrimSpace(description); trimmed != "" {
		asset.Description = trimmed
	}

	if err := s.uow.AssetRepo().Update(ctx, asset); err != nil {
		s.logger.Warn("asset row update failed after file replacement", "asset_id", id, "stored_name", storedName, "error", err)
		return nil, fmt.Errorf("updating asset row: %w", err)
	}

	s.publish(ctx, domain.AssetEventReplaced, asset)

	return asset, nil
}
