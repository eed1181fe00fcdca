package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/repository"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/config"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/service/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(mockUow *repository.MockUnitOfWork) port.AuthService {
	cfg := config.AuthConfig{
		Secret:   "test-secret",
		Issuer:   "movies-api",
		TokenTTL: time.Hour,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return auth.NewAuthService(mockUow, cfg, logger)
}

func TestAuthService_Register_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := newTestService(mockUow)

	mockUserRepo := mockUow.GetUserRepoMock()
	mockUserRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	// Act
	user, err := service.Register(ctx, "alice", "correct horse battery", nil)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, []string{"user"}, user.Roles)
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse battery")))
	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := newTestService(mockUow)

	// Act
	user, err := service.Register(ctx, "alice", "short", nil)

	// Assert
	assert.Nil(t, user)
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	mockUow.GetUserRepoMock().AssertNotCalled(t, "Create")
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := newTestService(mockUow)

	mockUserRepo := mockUow.GetUserRepoMock()
	mockUserRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrAlreadyExists)

	// Act
	user, err := service.Register(ctx, "alice", "correct horse battery", nil)

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	mockUserRepo.AssertExpectations(t)
}
