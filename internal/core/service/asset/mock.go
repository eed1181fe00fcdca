package asset

import (
	"context"
	"io"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"

	"github.com/stretchr/testify/mock"
)

// MockAssetService is a mock implementation of AssetService
type MockAssetService struct {
	mock.Mock
}

// NewMockAssetService creates a new MockAssetService
func NewMockAssetService() *MockAssetService {
	return &MockAssetService{}
}

func (m *MockAssetService) Upload(ctx context.Context, content io.Reader, originalFileName string, sizeBytes int64, description string) (*domain.Asset, error) {
	args := m.Called(ctx, content, originalFileName, sizeBytes, description)
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetService) Get(ctx context.Context, id int64) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetService) List(ctx context.Context, filter domain.AssetFilter, pageNumber, pageSize int) (*domain.AssetPage, error) {
	args := m.Called(ctx, filter, pageNumber, pageSize)
	return args.Get(0).(*domain.AssetPage), args.Error(1)
}

func (m *MockAssetService) ListAll(ctx context.Context) ([]domain.Asset, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetService) ReplaceFile(ctx context.Context, id int64, content io.Reader, originalFileName string, sizeBytes int64, description string) (*domain.Asset, error) {
	args := m.Called(ctx, id, content, originalFileName, sizeBytes, description)
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetService) UpdateMeta(ctx context.Context, id int64, update domain.AssetMetaUpdate) (*domain.Asset, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetService) ReplaceThumbnail(ctx context.Context, id int64, content io.Reader, originalFileName string, sizeBytes int64) (*domain.Asset, error) {
	args := m.Called(ctx, id, content, originalFileName, sizeBytes)
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAssetService) Download(ctx context.Context, id int64) (*port.AssetContent, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*port.AssetContent), args.Error(1)
}

func (m *MockAssetService) OpenStored(ctx context.Context, storedName string) (*port.AssetContent, error) {
	args := m.Called(ctx, storedName)
	return args.Get(0).(*port.AssetContent), args.Error(1)
}
