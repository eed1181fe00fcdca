package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"

	"github.com/lib/pq"
)

type sqlUserRepository struct {
	db SQLQuerier
}

// NewSQLUserRepository creates sqlUserRepository that implements port.UserRepository
func NewSQLUserRepository(db SQLQuerier) port.UserRepository {
	return &sqlUserRepository{
		db: db,
	}
}

// Create inserts a new user; usernames are unique
func (s *sqlUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (username, password_hash, roles)
              VALUES ($1, $2, $3)
              RETURNING id, created_at`

	err := s.db.QueryRowContext(ctx, query,
		user.Username,
		user.PasswordHash,
		pq.Array(user.Roles),
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}

// FindByUsername finds one user by username
func (s *sqlUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	var roles pq.StringArray

	query := `SELECT id, username, password_hash, roles, created_at FROM users WHERE username = $1`
	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&roles,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user.Roles = roles
	return &user, nil
}
