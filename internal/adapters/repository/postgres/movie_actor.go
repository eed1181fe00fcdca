package postgres

import (
	"context"
	"fmt"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"
)

type sqlMovieActorRepository struct {
	db SQLQuerier
}

// NewSQLMovieActorRepository creates sqlMovieActorRepository that implements port.MovieActorRepository
func NewSQLMovieActorRepository(db SQLQuerier) port.MovieActorRepository {
	return &sqlMovieActorRepository{
		db: db,
	}
}

// Link attaches an actor to a movie; relinking the same pair is a conflict
func (s *sqlMovieActorRepository) Link(ctx context.Context, movieID, actorID int64) error {
	query := `INSERT INTO movie_actors (movie_id, actor_id) VALUES ($1, $2)`
	if _, err := s.db.ExecContext(ctx, query, movieID, actorID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return domain.ErrMovieNotFound
		}
		return fmt.Errorf("error linking actor to movie: %w", err)
	}
	return nil
}

// Unlink detaches an actor from a movie
func (s *sqlMovieActorRepository) Unlink(ctx context.Context, movieID, actorID int64) error {
	query := `DELETE FROM movie_actors WHERE movie_id = $1 AND actor_id = $2`
	result, err := s.db.ExecContext(ctx, query, movieID, actorID)
	if err != nil {
		return fmt.Errorf("error unlinking actor from movie: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrActorNotFound
	}
	return nil
}

// FindActorsByMovie lists the actors linked to one movie
func (s *sqlMovieActorRepository) FindActorsByMovie(ctx context.Context, movieID int64) ([]domain.Actor, error) {
	query := `SELECT a.id, a.full_name
              FROM actors a
              JOIN movie_actors ma ON ma.actor_id = a.id
              WHERE ma.movie_id = $1
              ORDER BY a.id`

	rows, err := s.db.QueryContext(ctx, query, movieID)
	if err != nil {
		return nil, fmt.Errorf("error querying movie actors: %w", err)
	}
	defer rows.Close()

	var actors []domain.Actor
	for rows.Next() {
		var actor domain.Actor
		if err := rows.Scan(&actor.ID, &actor.FullName); err != nil {
			return nil, fmt.Errorf("error scanning actor: %w", err)
		}
		actors = append(actors, actor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating actors: %w", err)
	}
	return actors, nil
}
