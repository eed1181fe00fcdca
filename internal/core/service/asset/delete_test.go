package asset_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAssetService_Delete_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, deps := newTestAssetService()

	existing := &domain.Asset{
		ID:                4,
		StoredFileName:    "video.mp4",
		ThumbnailFileName: "thumb.jpg",
	}

	deps.uow.GetAssetRepoMock().On("FindByID", ctx, int64(4)).Return(existing, nil)
	deps.uow.GetAssetRepoMock().On("Delete", ctx, int64(4)).Return(nil)
	deps.store.On("Delete", ctx, "video.mp4").Return(true, nil)
	deps.store.On("Delete", ctx, "thumb.jpg").Return(true, nil)
	deps.events.On("Publish", ctx, mock.AnythingOfType("domain.AssetEvent")).Return(nil)

	// Act
	err := service.Delete(ctx, 4)

	// Assert
	assert.NoError(t, err)
	deps.store.AssertExpectations(t)
	deps.uow.GetAssetRepoMock().AssertExpectations(t)
	deps.events.AssertExpectations(t)
}

func TestAssetService_Delete_FileCleanupFailureIsSwallowed(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, deps := newTestAssetService()

	existing := &domain.Asset{ID: 4, StoredFileName: "video.mp4"}

	deps.uow.GetAssetRepoMock().On("FindByID", ctx, int64(4)).Return(existing, nil)
	deps.uow.GetAssetRepoMock().On("Delete", ctx, int64(4)).Return(nil)
	deps.store.On("Delete", ctx, "video.mp4").Return(false, errors.New("permission denied"))
	deps.events.On("Publish", ctx, mock.AnythingOfType("domain.AssetEvent")).Return(nil)

	// Act
	err := service.Delete(ctx, 4)

	// Assert
	assert.NoError(t, err)
}

func TestAssetService_Delete_RowDeleteFails_FilesLeftAlone(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, deps := newTestAssetService()

	existing := &domain.Asset{ID: 4, StoredFileName: "video.mp4"}

	deps.uow.GetAssetRepoMock().On("FindByID", ctx, int64(4)).Return(existing, nil)
	deps.uow.GetAssetRepoMock().On("Delete", ctx, int64(4)).Return(errors.New("database error"))

	// Act
	err := service.Delete(ctx, 4)

	// Assert
	assert.ErrorIs(t, err, domain.ErrStorageConsistency)
	deps.store.AssertNotCalled(t, "Delete")
	deps.events.AssertNotCalled(t, "Publish")
}

func TestAssetService_Delete_NotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, deps := newTestAssetService()

	deps.uow.GetAssetRepoMock().On("FindByID", ctx, int64(99)).
		Return((*domain.Asset)(nil), domain.ErrAssetNotFound)

	// Act
	err := service.Delete(ctx, 99)

	// Assert
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
	deps.store.AssertNotCalled(t, "Delete")
}
