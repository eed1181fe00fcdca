package auth

import (
	"log/slog"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/config"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"

	"github.com/golang-jwt/jwt/v5"
)

type authService struct {
	uow    port.UnitOfWork
	cfg    config.AuthConfig
	logger *slog.Logger
}

// NewAuthService creates the registration/login/token service
func NewAuthService(uow port.UnitOfWork, cfg config.AuthConfig, logger *slog.Logger) port.AuthService {
	return &authService{
		uow:    uow,
		cfg:    cfg,
		logger: logger,
	}
}

// accessClaims is the token payload: standard registered claims plus the
// user's roles.
type accessClaims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}
