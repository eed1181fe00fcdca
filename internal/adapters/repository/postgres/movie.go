package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"

	"github.com/lib/pq"
)

type sqlMovieRepository struct {
	db SQLQuerier
}

// NewSQLMovieRepository creates sqlMovieRepository that implements port.MovieRepository
func NewSQLMovieRepository(db SQLQuerier) port.MovieRepository {
	return &sqlMovieRepository{
		db: db,
	}
}

// Create inserts a new movie and fills in the generated id and date_added
func (s *sqlMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (title, description, is_watched, date_watched, rating,
                genre, poster_url, studio_id)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
              RETURNING id, date_added`

	err := s.db.QueryRowContext(ctx, query,
		movie.Title,
		movie.Description,
		movie.IsWatched,
		nullableTime(movie.DateWatched),
		nullableInt(movie.Rating),
		movie.Genre,
		movie.PosterURL,
		movie.StudioID,
	).Scan(&movie.ID, &movie.DateAdded)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrStudioNotFound
		}
		return fmt.Errorf("error inserting movie: %w", err)
	}
	return nil
}

const movieDetailsQuery = `
	SELECT m.id, m.title, m.description, m.is_watched, m.date_watched, m.rating,
	       m.genre, m.poster_url, m.date_added, m.studio_id, s.name,
	       COALESCE(array_agg(a.full_name ORDER BY a.full_name) FILTER (WHERE a.id IS NOT NULL), '{}')
	FROM movies m
	JOIN studios s ON s.id = m.studio_id
	LEFT JOIN movie_actors ma ON ma.movie_id = m.id
	LEFT JOIN actors a ON a.id = ma.actor_id`

// FindByID finds a movie joined with its studio name and actor names
func (s *sqlMovieRepository) FindByID(ctx context.Context, id int64) (*domain.MovieDetails, error) {
	query := movieDetailsQuery + `
	WHERE m.id = $1
	GROUP BY m.id, s.name`

	details, err := scanMovieDetails(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return details, nil
}

// FindAll returns filtered, sorted, paginated movies with studio and actors
func (s *sqlMovieRepository) FindAll(ctx context.Context, filter domain.MovieFilter, offset, limit int) ([]domain.MovieDetails, error) {

	var conds []string
	var args []any

	if strings.EqualFold(filter.FilterOn, "title") && strings.TrimSpace(filter.FilterQuery) != "" {
		args = append(args, "%"+filter.FilterQuery+"%")
		conds = append(conds, fmt.Sprintf("m.title LIKE $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = "\n\tWHERE " + strings.Join(conds, " AND ")
	}

	orderBy := "m.id"
	if strings.EqualFold(filter.SortBy, "title") {
		orderBy = "m.title"
	}
	direction := "ASC"
	if !filter.Ascending {
		direction = "DESC"
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`%s%s
	GROUP BY m.id, s.name
	ORDER BY %s %s
	LIMIT $%d OFFSET $%d`, movieDetailsQuery, where, orderBy, direction, len(args)-1, len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying movies: %w", err)
	}
	defer rows.Close()

	var movies []domain.MovieDetails
	for rows.Next() {
		details, err := scanMovieDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning movie: %w", err)
		}
		movies = append(movies, *details)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movies: %w", err)
	}
	return movies, nil
}

// Update overwrites a movie row
func (s *sqlMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `UPDATE movies
              SET title = $1, description = $2, is_watched = $3, date_watched = $4,
                  rating = $5, genre = $6, poster_url = $7, studio_id = $8
              WHERE id = $9`

	result, err := s.db.ExecContext(ctx, query,
		movie.Title,
		movie.Description,
		movie.IsWatched,
		nullableTime(movie.DateWatched),
		nullableInt(movie.Rating),
		movie.Genre,
		movie.PosterURL,
		movie.StudioID,
		movie.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrStudioNotFound
		}
		return fmt.Errorf("error updating movie: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

// Delete removes a movie; the join table cascades
func (s *sqlMovieRepository) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting movie: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovieDetails(row rowScanner) (*domain.MovieDetails, error) {
	var details domain.MovieDetails
	var dateWatched sql.NullTime
	var rating sql.NullInt64
	var actorNames pq.StringArray

	err := row.Scan(
		&details.ID,
		&details.Title,
		&details.Description,
		&details.IsWatched,
		&dateWatched,
		&rating,
		&details.Genre,
		&details.PosterURL,
		&details.DateAdded,
		&details.StudioID,
		&details.StudioName,
		&actorNames,
	)
	if err != nil {
		return nil, err
	}

	if dateWatched.Valid {
		details.DateWatched = &dateWatched.Time
	}
	if rating.Valid {
		r := int(rating.Int64)
		details.Rating = &r
	}
	details.ActorNames = actorNames
	return &details, nil
}

func nullableTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
