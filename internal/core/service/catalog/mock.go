package catalog

import (
	"context"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of CatalogService
type MockCatalogService struct {
	mock.Mock
}

// NewMockCatalogService creates a new MockCatalogService
func NewMockCatalogService() *MockCatalogService {
	return &MockCatalogService{}
}

func (m *MockCatalogService) CreateMovie(ctx context.Context, movie *domain.Movie) (*domain.MovieDetails, error) {
	args := m.Called(ctx, movie)
	return args.Get(0).(*domain.MovieDetails), args.Error(1)
}

func (m *MockCatalogService) GetMovie(ctx context.Context, id int64) (*domain.MovieDetails, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.MovieDetails), args.Error(1)
}

func (m *MockCatalogService) ListMovies(ctx context.Context, filter domain.MovieFilter, pageNumber, pageSize int) ([]domain.MovieDetails, error) {
	args := m.Called(ctx, filter, pageNumber, pageSize)
	return args.Get(0).([]domain.MovieDetails), args.Error(1)
}

func (m *MockCatalogService) UpdateMovie(ctx context.Context, movie *domain.Movie) (*domain.MovieDetails, error) {
	args := m.Called(ctx, movie)
	return args.Get(0).(*domain.MovieDetails), args.Error(1)
}

func (m *MockCatalogService) DeleteMovie(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) LinkActor(ctx context.Context, movieID, actorID int64) error {
	args := m.Called(ctx, movieID, actorID)
	return args.Error(0)
}

func (m *MockCatalogService) UnlinkActor(ctx context.Context, movieID, actorID int64) error {
	args := m.Called(ctx, movieID, actorID)
	return args.Error(0)
}

func (m *MockCatalogService) CreateActor(ctx context.Context, actor *domain.Actor) (*domain.Actor, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockCatalogService) GetActor(ctx context.Context, id int64) (*domain.Actor, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockCatalogService) ListActors(ctx context.Context) ([]domain.Actor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Actor), args.Error(1)
}

func (m *MockCatalogService) UpdateActor(ctx context.Context, actor *domain.Actor) (*domain.Actor, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockCatalogService) DeleteActor(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) CreateStudio(ctx context.Context, studio *domain.Studio) (*domain.Studio, error) {
	args := m.Called(ctx, studio)
	return args.Get(0).(*domain.Studio), args.Error(1)
}

func (m *MockCatalogService) GetStudio(ctx context.Context, id int64) (*domain.Studio, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Studio), args.Error(1)
}

func (m *MockCatalogService) ListStudios(ctx context.Context) ([]domain.Studio, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Studio), args.Error(1)
}

func (m *MockCatalogService) UpdateStudio(ctx context.Context, studio *domain.Studio) (*domain.Studio, error) {
	args := m.Called(ctx, studio)
	return args.Get(0).(*domain.Studio), args.Error(1)
}

func (m *MockCatalogService) DeleteStudio(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
