package port

import (
	"context"
	"io"
	"time"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// AssetRepository is an interface to define asset metadata interactions
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	FindByID(ctx context.Context, id int64) (*domain.Asset, error)
	FindByStoredName(ctx context.Context, storedName string) (*domain.Asset, error)
	Update(ctx context.Context, asset *domain.Asset) error
	Delete(ctx context.Context, id int64) error
	FindAll(ctx context.Context) ([]domain.Asset, error)
	FindPage(ctx context.Context, filter domain.AssetFilter, offset, limit int) ([]domain.Asset, int, error)
}

// BlobStore is an interface to define physical file interactions. Names are
// always bare stored names; implementations must refuse anything that would
// resolve outside their root.
type BlobStore interface {
	Save(ctx context.Context, storedName string, content io.Reader) (int64, error)
	// Open returns the stored bytes as a seekable stream plus the last
	// modification time, or domain.ErrFileNotFound.
	Open(ctx context.Context, storedName string) (io.ReadSeekCloser, time.Time, error)
	// Delete reports whether a file was actually removed. A missing file is
	// (false, nil), never an error.
	Delete(ctx context.Context, storedName string) (bool, error)
}

// Thumbnailer derives a still-frame preview from video content. Extract
// returns domain.ErrNoVideoStream when the content holds no decodable video
// stream; any other error means extraction failed.
type Thumbnailer interface {
	Extract(ctx context.Context, video io.Reader, storedFileName string) (string, io.ReadCloser, error)
}

// AssetContent is a stored file opened for streaming back to a caller.
type AssetContent struct {
	Content     io.ReadSeekCloser
	ContentType string
	FileName    string
	ModTime     time.Time
}

// AssetService is an interface to define the asset lifecycle service
type AssetService interface {
	Upload(ctx context.Context, content io.Reader, originalFileName string, sizeBytes int64, description string) (*domain.Asset, error)
	Get(ctx context.Context, id int64) (*domain.Asset, error)
	List(ctx context.Context, filter domain.AssetFilter, pageNumber, pageSize int) (*domain.AssetPage, error)
	ListAll(ctx context.Context) ([]domain.Asset, error)
	ReplaceFile(ctx context.Context, id int64, content io.Reader, originalFileName string, sizeBytes int64, description string) (*domain.Asset, error)
	UpdateMeta(ctx context.Context, id int64, update domain.AssetMetaUpdate) (*domain.Asset, error)
	ReplaceThumbnail(ctx context.Context, id int64, content io.Reader, originalFileName string, sizeBytes int64) (*domain.Asset, error)
	Delete(ctx context.Context, id int64) error
	Download(ctx context.Context, id int64) (*AssetContent, error)
	OpenStored(ctx context.Context, storedName string) (*AssetContent, error)
}
