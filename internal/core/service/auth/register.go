package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// Register creates a new account with a bcrypt-hashed password. An empty role
// list defaults to the plain "user" role.
func (s *authService) Register(ctx context.Context, username, password string, roles []string) (*domain.User, error) {
	var fields []domain.FieldError
	if strings.TrimSpace(username) == "" {
		fields = append(fields, domain.FieldError{Field: "username", Message: "username is required"})
	}
	if len(password) < minPasswordLength {
		fields = append(fields, domain.FieldError{Field: "password", Message: fmt.Sprintf("password must be at least %d characters", minPasswordLength)})
	}
	if err := domain.NewValidationError(fields); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	if len(roles) == 0 {
		roles = []string{"user"}
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Roles:        roles,
	}
	if err := s.uow.UserRepo().Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "username", user.Username)
	return user, nil
}
