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

type sqlAssetRepository struct {
	db SQLQuerier
}

// NewSQLAssetRepository creates sqlAssetRepository that implements port.AssetRepository
func NewSQLAssetRepository(db SQLQuerier) port.AssetRepository {
	return &sqlAssetRepository{
		db: db,
	}
}

const assetColumns = `id, stored_file_name, file_extension, size_bytes, description,
       thumbnail_file_name, title, intro, genre, year, movie_id, created_at, updated_at`

// Create inserts a new asset row and fills in the generated id and timestamps
func (s *sqlAssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	query := `INSERT INTO assets (stored_file_name, file_extension, size_bytes, description,
                thumbnail_file_name, title, intro, genre, year, movie_id)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
              RETURNING id, created_at, updated_at`

	err := s.db.QueryRowContext(ctx, query,
		asset.StoredFileName,
		asset.FileExtension,
		asset.SizeBytes,
		asset.Description,
		asset.ThumbnailFileName,
		asset.Title,
		asset.Intro,
		asset.Genre,
		nullableInt(asset.Year),
		nullableInt64(asset.MovieID),
	).Scan(&asset.ID, &asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting asset: %w", err)
	}
	return nil
}

// FindByID finds one asset by id
func (s *sqlAssetRepository) FindByID(ctx context.Context, id int64) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`
	return s.scanOne(s.db.QueryRowContext(ctx, query, id))
}

// FindByStoredName finds one asset by its stored file name
func (s *sqlAssetRepository) FindByStoredName(ctx context.Context, storedName string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE stored_file_name = $1`
	return s.scanOne(s.db.QueryRowContext(ctx, query, storedName))
}

// Update overwrites every mutable column of the row
func (s *sqlAssetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	query := `UPDATE assets
              SET stored_file_name = $1, file_extension = $2, size_bytes = $3,
                  description = $4, thumbnail_file_name = $5, title = $6,
                  intro = $7, genre = $8, year = $9, movie_id = $10, updated_at = now()
              WHERE id = $11`

	result, err := s.db.ExecContext(ctx, query,
		asset.StoredFileName,
		asset.FileExtension,
		asset.SizeBytes,
		asset.Description,
		asset.ThumbnailFileName,
		asset.Title,
		asset.Intro,
		asset.Genre,
		nullableInt(asset.Year),
		nullableInt64(asset.MovieID),
		asset.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating asset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

// Delete removes the row entirely; the physical files are handled elsewhere
func (s *sqlAssetRepository) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting asset: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

// FindAll returns every asset, newest first
func (s *sqlAssetRepository) FindAll(ctx context.Context) ([]domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets ORDER BY id DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying assets: %w", err)
	}
	defer rows.Close()
	return s.scanMany(rows)
}

// FindPage returns one page of filtered assets plus the total match count.
// Ordering is id descending: the pagination contract.
func (s *sqlAssetRepository) FindPage(ctx context.Context, filter domain.AssetFilter, offset, limit int) ([]domain.Asset, int, error) {

	var conds []string
	var args []any

	switch filter.Type {
	case domain.MediaTypeVideo:
		args = append(args, pq.Array(domain.VideoExtensions()))
		conds = append(conds, fmt.Sprintf("file_extension = ANY($%d)", len(args)))
	case domain.MediaTypeImage:
		args = append(args, pq.Array(domain.ImageExtensions()))
		conds = append(conds, fmt.Sprintf("file_extension = ANY($%d)", len(args)))
	}

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(description LIKE $%d OR title LIKE $%d OR intro LIKE $%d OR genre LIKE $%d)", n, n, n, n))
	}

	if filter.MovieID > 0 {
		args = append(args, filter.MovieID)
		conds = append(conds, fmt.Sprintf("movie_id = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var totalCount int
	countQuery := `SELECT count(*) FROM assets` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("error counting assets: %w", err)
	}

	args = append(args, limit, offset)
	pageQuery := fmt.Sprintf(`SELECT %s FROM assets%s ORDER BY id DESC LIMIT $%d OFFSET $%d`,
		assetColumns, where, len(args)-1, len(args))

	rows, err := s.db.QueryContext(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying assets: %w", err)
	}
	defer rows.Close()

	items, err := s.scanMany(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, totalCount, nil
}

func (s *sqlAssetRepository) scanOne(row *sql.Row) (*domain.Asset, error) {
	var rec dbAsset
	err := row.Scan(
		&rec.ID,
		&rec.StoredFileName,
		&rec.FileExtension,
		&rec.SizeBytes,
		&rec.Description,
		&rec.ThumbnailFileName,
		&rec.Title,
		&rec.Intro,
		&rec.Genre,
		&rec.Year,
		&rec.MovieID,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, err
	}
	return rec.ToDomain(), nil
}

func (s *sqlAssetRepository) scanMany(rows *sql.Rows) ([]domain.Asset, error) {
	var assets []domain.Asset
	for rows.Next() {
		var rec dbAsset
		err := rows.Scan(
			&rec.ID,
			&rec.StoredFileName,
			&rec.FileExtension,
			&rec.SizeBytes,
			&rec.Description,
			&rec.ThumbnailFileName,
			&rec.Title,
			&rec.Intro,
			&rec.Genre,
			&rec.Year,
			&rec.MovieID,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning asset: %w", err)
		}
		assets = append(assets, *rec.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assets: %w", err)
	}
	return assets, nil
}

// dbAsset represents an asset row in DB
type dbAsset struct {
	ID                int64          `db:"id"`
	StoredFileName    string         `db:"stored_file_name"`
	FileExtension     string         `db:"file_extension"`
	SizeBytes         int64          `db:"size_bytes"`
	Description       string         `db:"description"`
	ThumbnailFileName string         `db:"thumbnail_file_name"`
	Title             string         `db:"title"`
	Intro             string         `db:"intro"`
	Genre             string         `db:"genre"`
	Year              sql.NullInt64  `db:"year"`
	MovieID           sql.NullInt64  `db:"movie_id"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

// ToDomain converts to domain.Asset
func (a *dbAsset) ToDomain() *domain.Asset {
	asset := &domain.Asset{
		ID:                a.ID,
		StoredFileName:    a.StoredFileName,
		FileExtension:     a.FileExtension,
		SizeBytes:         a.SizeBytes,
		Description:       a.Description,
		ThumbnailFileName: a.ThumbnailFileName,
		Title:             a.Title,
		Intro:             a.Intro,
		Genre:             a.Genre,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
	if a.Year.Valid {
		year := int(a.Year.Int64)
		asset.Year = &year
	}
	if a.MovieID.Valid {
		movieID := a.MovieID.Int64
		asset.MovieID = &movieID
	}
	return asset
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullableInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
