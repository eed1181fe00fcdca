package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"
)

type sqlStudioRepository struct {
	db SQLQuerier
}

// NewSQLStudioRepository creates sqlStudioRepository that implements port.StudioRepository
func NewSQLStudioRepository(db SQLQuerier) port.StudioRepository {
	return &sqlStudioRepository{
		db: db,
	}
}

// Create inserts a new studio; names are unique
func (s *sqlStudioRepository) Create(ctx context.Context, studio *domain.Studio) error {
	query := `INSERT INTO studios (name) VALUES ($1) RETURNING id`
	if err := s.db.QueryRowContext(ctx, query, studio.Name).Scan(&studio.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("error inserting studio: %w", err)
	}
	return nil
}

// FindByID finds one studio by id
func (s *sqlStudioRepository) FindByID(ctx context.Context, id int64) (*domain.Studio, error) {
	var studio domain.Studio
	query := `SELECT id, name FROM studios WHERE id = $1`
	err := s.db.QueryRowContext(ctx, query, id).Scan(&studio.ID, &studio.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStudioNotFound
		}
		return nil, err
	}
	return &studio, nil
}

// FindAll returns every studio
func (s *sqlStudioRepository) FindAll(ctx context.Context) ([]domain.Studio, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM studios ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error querying studios: %w", err)
	}
	defer rows.Close()

	var studios []domain.Studio
	for rows.Next() {
		var studio domain.Studio
		if err := rows.Scan(&studio.ID, &studio.Name); err != nil {
			return nil, fmt.Errorf("error scanning studio: %w", err)
		}
		studios = append(studios, studio)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating studios: %w", err)
	}
	return studios, nil
}

// Update overwrites a studio row
func (s *sqlStudioRepository) Update(ctx context.Context, studio *domain.Studio) error {
	result, err := s.db.ExecContext(ctx, `UPDATE studios SET name = $1 WHERE id = $2`, studio.Name, studio.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("error updating studio: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrStudioNotFound
	}
	return nil
}

// Delete removes a studio unless movies still reference it
func (s *sqlStudioRepository) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM studios WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrStudioInUse
		}
		return fmt.Errorf("error deleting studio: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrStudioNotFound
	}
	return nil
}
