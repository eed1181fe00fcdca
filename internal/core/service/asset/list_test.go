package asset_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestAssetService_List_Defaults(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, deps := newTestAssetService()
	filter := domain.AssetFilter{}

	deps.uow.GetAssetRepoMock().On("FindPage", ctx, filter, 0, 24).
		Return([]domain.Asset{{ID: 2}, {ID: 1}}, 2, nil)

	// Act
	page, err := service.List(ctx, filter, 0, 0)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, 24, page.PageSize)
	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Items, 2)
	deps.uow.GetAssetRepoMock().AssertExpectations(t)
}

func TestAssetService_List_ClampsPageSize(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, deps := newTestAssetService()
	filter := domain.AssetFilter{Type: domain.MediaTypeVideo}

	deps.uow.GetAssetRepoMock().On("FindPage", ctx, filter, 100, 100).
		Return([]domain.Asset{}, 0, nil)

	// Act
	page, err := service.List(ctx, filter, 2, 5000)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 100, page.PageSize)
	deps.uow.GetAssetRepoMock().AssertExpectations(t)
}

func TestAssetService_List_TotalPagesRoundsUp(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, deps := newTestAssetService()
	filter := domain.AssetFilter{}

	deps.uow.GetAssetRepoMock().On("FindPage", ctx, filter, 0, 10).
		Return([]domain.Asset{}, 25, nil)

	// Act
	page, err := service.List(ctx, filter, 1, 10)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
}

func TestAssetService_List_RepoError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, deps := newTestAssetService()
	expectedError := errors.New("database error")

	deps.uow.GetAssetRepoMock().On("FindPage", ctx, domain.AssetFilter{}, 0, 24).
		Return([]domain.Asset{}, 0, expectedError)

	// Act
	page, err := service.List(ctx, domain.AssetFilter{}, 1, 0)

	// Assert
	assert.Nil(t, page)
	assert.Equal(t, expectedError, err)
}
