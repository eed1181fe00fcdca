package asset

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/config"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"

	"github.com/google/uuid"
)

type assetService struct {
	uow       port.UnitOfWork
	store     port.BlobStore
	thumbs    port.Thumbnailer
	events    port.EventPublisher
	uploadCfg config.UploadConfig
	logger    *slog.Logger
}

// NewAssetService creates the asset lifecycle service
func NewAssetService(
	uow port.UnitOfWork,
	store port.BlobStore,
	thumbs port.Thumbnailer,
	events port.EventPublisher,
	cfg config.UploadConfig,
	logger *slog.Logger,
) port.AssetService {
	return &assetService{
		uow:       uow,
		store:     store,
		thumbs:    thumbs,
		events:    events,
		uploadCfg: cfg,
		logger:    logger,
	}
}

// validateUpload checks the original file name and declared size against the
// full allowed extension set. It is pure: callers decide what to do with the
// field errors.
func validateUpload(fileName string, sizeBytes, maxSize int64) []domain.FieldError {
	var fields []domain.FieldError

	ext := strings.ToLower(filepath.Ext(fileName))
	if !domain.ExtensionAllowed(ext) {
		fields = append(fields, domain.FieldError{Field: "file", Message: "unsupported file extension"})
	}
	if sizeBytes > maxSize {
		fields = append(fields, domain.FieldError{Field: "file", Message: "file size exceeds upload limit"})
	}
	return fields
}

// validateThumbnailUpload is validateUpload restricted to the image subset.
func validateThumbnailUpload(fileName string, sizeBytes, maxSize int64) []domain.FieldError {
	var fields []domain.FieldError

	ext := strings.ToLower(filepath.Ext(fileName))
	if domain.MediaTypeForExtension(ext) != domain.MediaTypeImage {
		fields = append(fields, domain.FieldError{Field: "file", Message: "thumbnail must be an image"})
	}
	if sizeBytes > maxSize {
		fields = append(fields, domain.FieldError{Field: "file", Message: "file size exceeds thumbnail limit"})
	}
	return fields
}

// newStoredName builds a never-reused on-disk key. The random token keeps
// concurrent uploads from colliding without any locking.
func newStoredName(ext string) string {
	return uuid.NewString() + ext
}

// deriveThumbnail extracts a preview frame for a freshly stored video and
// saves it next to the main file. Every failure path returns "" so that the
// surrounding mutation never depends on thumbnailing.
func (s *assetService) deriveThumbnail(ctx context.Context, storedName string) string {
	video, _, err := s.store.Open(ctx, storedName)
	if err != nil {
		s.logger.Warn("could not reopen video for thumbnailing", "stored_name", storedName, "error", err)
		return ""
	}
	defer video.Close()

	thumbName, thumb, err := s.thumbs.Extract(ctx, video, storedName)
	if err != nil {
		if errors.Is(err, domain.ErrNoVideoStream) {
			s.logger.Info("no video stream, skipping thumbnail", "stored_name", storedName)
		} else {
			s.logger.Warn("thumbnail extraction failed", "stored_name", storedName, "error", err)
		}
		return ""
	}
	defer thumb.Close()

	if _, err := s.store.Save(ctx, thumbName, thumb); err != nil {
		s.logger.Warn("failed to save thumbnail", "stored_name", thumbName, "error", err)
		return ""
	}
	return thumbName
}

// removeStoredFile is the best-effort physical delete: a missing file or a
// storage error is logged and swallowed so that the primary operation always
// completes.
func (s *assetService) removeStoredFile(ctx context.Context, storedName string) {
	if storedName == "" {
		return
	}
	removed, err := s.store.Delete(ctx, storedName)
	if err != nil {
		s.logger.Warn("failed to delete stored file", "stored_name", storedName, "error", err)
		return
	}
	if !removed {
		s.logger.Info("stored file already absent", "stored_name", storedName)
	}
}

func (s *assetService) publish(ctx context.Context, eventType domain.AssetEventType, asset *domain.Asset) {
	event := domain.AssetEvent{
		Type:           eventType,
		AssetID:        asset.ID,
		StoredFileName: asset.StoredFileName,
		OccurredAt:     time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish asset event", "event", string(eventType), "asset_id", asset.ID, "error", err)
	}
}
