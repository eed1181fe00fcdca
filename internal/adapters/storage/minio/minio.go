package minio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/config"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is a BlobStore backed by an S3-compatible bucket.
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// Save streams content into the bucket under the stored name.
func (a *Adapter) Save(ctx context.Context, storedName string, content io.Reader) (int64, error) {
	info, err := a.client.PutObject(ctx, a.config.BucketName, storedName, content, -1, minio.PutObjectOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to put object: %w", err)
	}
	return info.Size, nil
}

// Open returns the object as a seekable stream plus its last-modified time.
// minio objects are lazily fetched, so a missing key only shows up on Stat.
func (a *Adapter) Open(ctx context.Context, storedName string) (io.ReadSeekCloser, time.Time, error) {
	object, err := a.client.GetObject(ctx, a.config.BucketName, storedName, minio.GetObjectOptions{})
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to get object: %w", err)
	}

	info, err := object.Stat()
	if err != nil {
		object.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, time.Time{}, domain.ErrFileNotFound
		}
		return nil, time.Time{}, fmt.Errorf("failed to stat object: %w", err)
	}
	return object, info.LastModified, nil
}

// Delete removes the object, reporting false without error when it is already
// absent.
func (a *Adapter) Delete(ctx context.Context, storedName string) (bool, error) {
	_, err := a.client.StatObject(ctx, a.config.BucketName, storedName, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object: %w", err)
	}

	if err := a.client.RemoveObject(ctx, a.config.BucketName, storedName, minio.RemoveObjectOptions{}); err != nil {
		return false, fmt.Errorf("failed to remove object: %w", err)
	}
	return true, nil
}
