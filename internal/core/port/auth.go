package port

import (
	"context"
	"time"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// UserRepository is an interface to define user account interactions
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// AuthService is an interface to define registration, login and token checks
type AuthService interface {
	Register(ctx context.Context, username, password string, roles []string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error)
	Verify(tokenString string) (string, []string, error)
}
