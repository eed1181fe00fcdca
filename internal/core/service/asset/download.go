package asset

import (
	"context"
	"path/filepath"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"
)

// Download opens the main file of an asset for streaming. The caller owns the
// returned content and must close it.
func (s *assetService) Download(ctx context.Context, id int64) (*port.AssetContent, error) {

	asset, err := s.uow.AssetRepo().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	content, modTime, err := s.store.Open(ctx, asset.StoredFileName)
	if err != nil {
		return nil, err
	}

	return &port.AssetContent{
		Content:     content,
		ContentType: domain.ContentTypeForExtension(asset.FileExtension),
		FileName:    asset.StoredFileName,
		ModTime:     modTime,
	}, nil
}

// OpenStored opens a file directly by its stored name, for the raw /uploads
// route. The blob store guards against names resolving outside its root.
func (s *assetService) OpenStored(ctx context.Context, storedName string) (*port.AssetContent, error) {

	content, modTime, err := s.store.Open(ctx, storedName)
	if err != nil {
		return nil, err
	}

	return &port.AssetContent{
		Content:     content,
		ContentType: domain.ContentTypeForExtension(filepath.Ext(storedName)),
		FileName:    storedName,
		ModTime:     modTime,
	}, nil
}
