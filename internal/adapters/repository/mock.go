package repository

import (
	"context"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"

	"github.com/stretchr/testify/mock"
)

// MockAssetRepository is a mock implementation of AssetRepository
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) FindByID(ctx context.Context, id int64) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindByStoredName(ctx context.Context, storedName string) (*domain.Asset, error) {
	args := m.Called(ctx, storedName)
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAssetRepository) FindAll(ctx context.Context) ([]domain.Asset, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindPage(ctx context.Context, filter domain.AssetFilter, offset, limit int) ([]domain.Asset, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	return args.Get(0).([]domain.Asset), args.Int(1), args.Error(2)
}

// MockMovieRepository is a mock implementation of MovieRepository
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id int64) (*domain.MovieDetails, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.MovieDetails), args.Error(1)
}

func (m *MockMovieRepository) FindAll(ctx context.Context, filter domain.MovieFilter, offset, limit int) ([]domain.MovieDetails, error) {
	args := m.Called(ctx, filter, offset, limit)
	return args.Get(0).([]domain.MovieDetails), args.Error(1)
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockActorRepository is a mock implementation of ActorRepository
type MockActorRepository struct {
	mock.Mock
}

func (m *MockActorRepository) Create(ctx context.Context, actor *domain.Actor) error {
	args := m.Called(ctx, actor)
	return args.Error(0)
}

func (m *MockActorRepository) FindByID(ctx context.Context, id int64) (*domain.Actor, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockActorRepository) FindAll(ctx context.Context) ([]domain.Actor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Actor), args.Error(1)
}

func (m *MockActorRepository) Update(ctx context.Context, actor *domain.Actor) error {
	args := m.Called(ctx, actor)
	return args.Error(0)
}

func (m *MockActorRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStudioRepository is a mock implementation of StudioRepository
type MockStudioRepository struct {
	mock.Mock
}

func (m *MockStudioRepository) Create(ctx context.Context, studio *domain.Studio) error {
	args := m.Called(ctx, studio)
	return args.Error(0)
}

func (m *MockStudioRepository) FindByID(ctx context.Context, id int64) (*domain.Studio, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Studio), args.Error(1)
}

func (m *MockStudioRepository) FindAll(ctx context.Context) ([]domain.Studio, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Studio), args.Error(1)
}

func (m *MockStudioRepository) Update(ctx context.Context, studio *domain.Studio) error {
	args := m.Called(ctx, studio)
	return args.Error(0)
}

func (m *MockStudioRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMovieActorRepository is a mock implementation of MovieActorRepository
type MockMovieActorRepository struct {
	mock.Mock
}

func (m *MockMovieActorRepository) Link(ctx context.Context, movieID, actorID int64) error {
	args := m.Called(ctx, movieID, actorID)
	return args.Error(0)
}

func (m *MockMovieActorRepository) Unlink(ctx context.Context, movieID, actorID int64) error {
	args := m.Called(ctx, movieID, actorID)
	return args.Error(0)
}

func (m *MockMovieActorRepository) FindActorsByMovie(ctx context.Context, movieID int64) ([]domain.Actor, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).([]domain.Actor), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockUnitOfWork is a mock implementation of UnitOfWork. Execute runs the
// callback against the mock itself so that expectations set on the sub-mocks
// hold inside and outside the transaction.
type MockUnitOfWork struct {
	mock.Mock
	assetRepo      *MockAssetRepository
	movieRepo      *MockMovieRepository
	actorRepo      *MockActorRepository
	studioRepo     *MockStudioRepository
	movieActorRepo *MockMovieActorRepository
	userRepo       *MockUserRepository
}

// NewMockUnitOfWork creates a new MockUnitOfWork with fresh sub-mocks
func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		assetRepo:      &MockAssetRepository{},
		movieRepo:      &MockMovieRepository{},
		actorRepo:      &MockActorRepository{},
		studioRepo:     &MockStudioRepository{},
		movieActorRepo: &MockMovieActorRepository{},
		userRepo:       &MockUserRepository{},
	}
}

func (m *MockUnitOfWork) AssetRepo() port.AssetRepository           { return m.assetRepo }
func (m *MockUnitOfWork) MovieRepo() port.MovieRepository           { return m.movieRepo }
func (m *MockUnitOfWork) ActorRepo() port.ActorRepository           { return m.actorRepo }
func (m *MockUnitOfWork) StudioRepo() port.StudioRepository         { return m.studioRepo }
func (m *MockUnitOfWork) MovieActorRepo() port.MovieActorRepository { return m.movieActorRepo }
func (m *MockUnitOfWork) UserRepo() port.UserRepository             { return m.userRepo }

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(m)
}

// GetAssetRepoMock exposes the asset sub-mock for expectations
func (m *MockUnitOfWork) GetAssetRepoMock() *MockAssetRepository { return m.assetRepo }

// GetMovieRepoMock exposes the movie sub-mock for expectations
func (m *MockUnitOfWork) GetMovieRepoMock() *MockMovieRepository { return m.movieRepo }

// GetActorRepoMock exposes the actor sub-mock for expectations
func (m *MockUnitOfWork) GetActorRepoMock() *MockActorRepository { return m.actorRepo }

// GetStudioRepoMock exposes the studio sub-mock for expectations
func (m *MockUnitOfWork) GetStudioRepoMock() *MockStudioRepository { return m.studioRepo }

// GetMovieActorRepoMock exposes the movie/actor sub-mock for expectations
func (m *MockUnitOfWork) GetMovieActorRepoMock() *MockMovieActorRepository { return m.movieActorRepo }

// GetUserRepoMock exposes the user sub-mock for expectations
func (m *MockUnitOfWork) GetUserRepoMock() *MockUserRepository { return m.userRepo }
