package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"
)

type sqlActorRepository struct {
	db SQLQuerier
}

// NewSQLActorRepository creates sqlActorRepository that implements port.ActorRepository
func NewSQLActorRepository(db SQLQuerier) port.ActorRepository {
	return &sqlActorRepository{
		db: db,
	}
}

// Create inserts a new actor
func (s *sqlActorRepository) Create(ctx context.Context, actor *domain.Actor) error {
	query := `INSERT INTO actors (full_name) VALUES ($1) RETURNING id`
	if err := s.db.QueryRowContext(ctx, query, actor.FullName).Scan(&actor.ID); err != nil {
		return fmt.Errorf("error inserting actor: %w", err)
	}
	return nil
}

// FindByID finds one actor by id
func (s *sqlActorRepository) FindByID(ctx context.Context, id int64) (*domain.Actor, error) {
	var actor domain.Actor
	query := `SELECT id, full_name FROM actors WHERE id = $1`
	err := s.db.QueryRowContext(ctx, query, id).Scan(&actor.ID, &actor.FullName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrActorNotFound
		}
		return nil, err
	}
	return &actor, nil
}

// FindAll returns every actor
func (s *sqlActorRepository) FindAll(ctx context.Context) ([]domain.Actor, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, full_name FROM actors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error querying actors: %w", err)
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

// Update overwrites an actor row
func (s *sqlActorRepository) Update(ctx context.Context, actor *domain.Actor) error {
	result, err := s.db.ExecContext(ctx, `UPDATE actors SET full_name = $1 WHERE id = $2`, actor.FullName, actor.ID)
	if err != nil {
		return fmt.Errorf("error updating actor: %w", err)
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

// Delete removes an actor; join rows cascade
func (s *sqlActorRepository) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM actors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting actor: %w", err)
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
