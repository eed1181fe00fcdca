package asset

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// Upload validates the incoming file, persists its bytes under a fresh stored
// name, derives a thumbnail for videos and creates the metadata row. The file
// is written before the row on purpose: if the insert fails the stored file is
// left behind rather than risking a row that points at nothing.
func (s *assetService) Upload(ctx context.Context, content io.Reader, originalFileName string, sizeBytes int64, description string) (*domain.Asset, error) {

	if err := domain.NewValidationError(validateUpload(originalFileName, sizeBytes, s.uploadCfg.MaxFileSize)); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(originalFileName))
	storedName := newStoredName(ext)

	written, err := s.store.Save(ctx, storedName, content)
	if err != nil {
		return nil, fmt.Errorf("saving uploaded file: %w", err)
	}

	asset := &domain.Asset{
		StoredFileName: storedName,
		FileExtension:  ext,
		SizeBytes:      written,
		Description:    strings.TrimSpace(description),
	}

	if asset.IsVideo() {
		asset.ThumbnailFileName = s.deriveThumbnail(ctx, storedName)
	}

	if err := s.uow.AssetRepo().Create(ctx, asset); err != nil {
		s.logger.Warn("asset row insert failed after file write, stored file orphaned", "stored_name", storedName, "error", err)
		return nil, fmt.Errorf("creating asset row: %w", err)
	}

	s.publish(ctx, domain.AssetEventCreated, asset)

	return asset, nil
}
