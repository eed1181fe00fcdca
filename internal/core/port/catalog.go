package port

import (
	"context"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// MovieRepository is an interface to define movie catalog interactions
type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	FindByID(ctx context.Context, id int64) (*domain.MovieDetails, error)
	FindAll(ctx context.Context, filter domain.MovieFilter, offset, limit int) ([]domain.MovieDetails, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id int64) error
}

// ActorRepository is an interface to define actor interactions
type ActorRepository interface {
	Create(ctx context.Context, actor *domain.Actor) error
	FindByID(ctx context.Context, id int64) (*domain.Actor, error)
	FindAll(ctx context.Context) ([]domain.Actor, error)
	Update(ctx context.Context, actor *domain.Actor) error
	Delete(ctx context.Context, id int64) error
}

// StudioRepository is an interface to define studio interactions
type StudioRepository interface {
	Create(ctx context.Context, studio *domain.Studio) error
	FindByID(ctx context.Context, id int64) (*domain.Studio, error)
	FindAll(ctx context.Context) ([]domain.Studio, error)
	Update(ctx context.Context, studio *domain.Studio) error
	Delete(ctx context.Context, id int64) error
}

// MovieActorRepository is an interface to define the movie/actor join table
type MovieActorRepository interface {
	Link(ctx context.Context, movieID, actorID int64) error
	Unlink(ctx context.Context, movieID, actorID int64) error
	FindActorsByMovie(ctx context.Context, movieID int64) ([]domain.Actor, error)
}

// CatalogService is an interface to define the movie/actor/studio service
type CatalogService interface {
	CreateMovie(ctx context.Context, movie *domain.Movie) (*domain.MovieDetails, error)
	GetMovie(ctx context.Context, id int64) (*domain.MovieDetails, error)
	ListMovies(ctx context.Context, filter domain.MovieFilter, pageNumber, pageSize int) ([]domain.MovieDetails, error)
	UpdateMovie(ctx context.Context, movie *domain.Movie) (*domain.MovieDetails, error)
	DeleteMovie(ctx context.Context, id int64) error
	LinkActor(ctx context.Context, movieID, actorID int64) error
	UnlinkActor(ctx context.Context, movieID, actorID int64) error

	CreateActor(ctx context.Context, actor *domain.Actor) (*domain.Actor, error)
	GetActor(ctx context.Context, id int64) (*domain.Actor, error)
	ListActors(ctx context.Context) ([]domain.Actor, error)
	UpdateActor(ctx context.Context, actor *domain.Actor) (*domain.Actor, error)
	DeleteActor(ctx context.Context, id int64) error

	CreateStudio(ctx context.Context, studio *domain.Studio) (*domain.Studio, error)
	GetStudio(ctx context.Context, id int64) (*domain.Studio, error)
	ListStudios(ctx context.Context) ([]domain.Studio, error)
	UpdateStudio(ctx context.Context, studio *domain.Studio) (*domain.Studio, error)
	DeleteStudio(ctx context.Context, id int64) error
}
