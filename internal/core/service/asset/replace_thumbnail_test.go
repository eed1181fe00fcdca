package asset_test

import (
	"context"
	"strings"
	"testing"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAssetService_ReplaceThumbnail_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, deps := newTestAssetService()
	content := strings.NewReader("jpeg bytes")

	existing := &domain.Asset{
		ID:                3,
		StoredFileName:    "video.mp4",
		FileExtension:     ".mp4",
		ThumbnailFileName: "old-thumb.jpg",
	}

	deps.uow.GetAssetRepoMock().On("FindByID", ctx, int64(3)).Return(existing, nil)
	deps.store.On("Delete", ctx, "old-thumb.jpg").Return(true, nil)
	deps.store.On("Save", ctx, mock.AnythingOfType("string"), content).Return(int64(10), nil)
	deps.uow.GetAssetRepoMock().On("Update", ctx, existing).Return(nil)

	// Act
	result, err := service.ReplaceThumbnail(ctx, 3, content, "cover.png", 10)

	// Assert
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(result.ThumbnailFileName, ".png"))
	assert.NotEqual(t, "old-thumb.jpg", result.ThumbnailFileName)
	// the main file is untouched
	assert.Equal(t, "video.mp4", result.StoredFileName)
	deps.store.AssertExpectations(t)
	deps.uow.GetAssetRepoMock().AssertExpectations(t)
}

func TestAssetService_ReplaceThumbnail_RejectsVideo(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, deps := newTestAssetService()

	// Act
	result, err := service.ReplaceThumbnail(ctx, 3, strings.NewReader("x"), "clip.mp4", 1)

	// Assert
	assert.Nil(t, result)
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	// validated before the row lookup
	deps.uow.GetAssetRepoMock().AssertNotCalled(t, "FindByID")
}

func TestAssetService_ReplaceThumbnail_TooLarge(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, deps := newTestAssetService()

	// Act
	result, err := service.ReplaceThumbnail(ctx, 3, strings.NewReader("x"), "cover.png", 20971521)

	// Assert
	assert.Nil(t, result)
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	deps.store.AssertNotCalled(t, "Save")
}

func TestAssetService_ReplaceThumbnail_NotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, deps := newTestAssetService()

	deps.uow.GetAssetRepoMock().On("FindByID", ctx, int64(99)).
		Return((*domain.Asset)(nil), domain.ErrAssetNotFound)

	// Act
	result, err := service.ReplaceThumbnail(ctx, 99, strings.NewReader("x"), "cover.png", 1)

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}
