package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the credentials and mints a signed access token. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.uow.UserRepo().FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", time.Time{}, domain.ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, domain.ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(s.cfg.TokenTTL)
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Roles: user.Roles,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	s.logger.Info("user logged in", "username", user.Username)
	return token, expiresAt, nil
}
