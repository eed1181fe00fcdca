package catalog

import (
	"context"
	"fmt"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"
)

// CreateMovie inserts a movie and returns it joined with studio and actors
func (s *catalogService) CreateMovie(ctx context.Context, movie *domain.Movie) (*domain.MovieDetails, error) {
	if err := domain.NewValidationError(validateMovie(movie)); err != nil {
		return nil, err
	}

	if err := s.uow.MovieRepo().Create(ctx, movie); err != nil {
		return nil, err
	}

	s.logger.Info("movie created", "movie_id", movie.ID, "title", movie.Title)
	return s.uow.MovieRepo().FindByID(ctx, movie.ID)
}

// GetMovie returns one movie with its studio name and actor names
func (s *catalogService) GetMovie(ctx context.Context, id int64) (*domain.MovieDetails, error) {
	return s.uow.MovieRepo().FindByID(ctx, id)
}

// ListMovies returns a filtered, sorted page of movies
func (s *catalogService) ListMovies(ctx context.Context, filter domain.MovieFilter, pageNumber, pageSize int) ([]domain.MovieDetails, error) {
	offset, limit := s.pageBounds(pageNumber, pageSize)
	return s.uow.MovieRepo().FindAll(ctx, filter, offset, limit)
}

// UpdateMovie overwrites a movie and returns the refreshed details
func (s *catalogService) UpdateMovie(ctx context.Context, movie *domain.Movie) (*domain.MovieDetails, error) {
	if err := domain.NewValidationError(validateMovie(movie)); err != nil {
		return nil, err
	}

	if err := s.uow.MovieRepo().Update(ctx, movie); err != nil {
		return nil, err
	}
	return s.uow.MovieRepo().FindByID(ctx, movie.ID)
}

// DeleteMovie removes a movie; actor links cascade away with it
func (s *catalogService) DeleteMovie(ctx context.Context, id int64) error {
	if err := s.uow.MovieRepo().Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("movie deleted", "movie_id", id)
	return nil
}

// LinkActor attaches an actor to a movie. Both sides are checked first so the
// caller gets the precise not-found error instead of a bare constraint
// violation.
func (s *catalogService) LinkActor(ctx context.Context, movieID, actorID int64) error {
	return s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if _, err := uow.MovieRepo().FindByID(ctx, movieID); err != nil {
			return err
		}
		if _, err := uow.ActorRepo().FindByID(ctx, actorID); err != nil {
			return err
		}
		if err := uow.MovieActorRepo().Link(ctx, movieID, actorID); err != nil {
			return fmt.Errorf("linking actor %d to movie %d: %w", actorID, movieID, err)
		}
		return nil
	})
}

// UnlinkActor detaches an actor from a movie
func (s *catalogService) UnlinkActor(ctx context.Context, movieID, actorID int64) error {
	return s.uow.MovieActorRepo().Unlink(ctx, movieID, actorID)
}
