package auth_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	chirouter "github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/handlers/http/chi"
	authhandler "github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/handlers/http/chi/v1/auth"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/service/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(service port.AuthService) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := authhandler.NewAuthHandlerV1(service, logger)
	return chirouter.NewRouter(logger, chirouter.RouterDeps{
		AuthHandler: handler,
		Env:         "test",
	})
}

func TestRegisterV1(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		// Arrange
		created := &domain.User{
			ID:       1,
			Username: "alice",
			Roles:    []string{"user"},
		}

		mockService := auth.NewMockAuthService()
		mockService.On("Register", mock.Anything, "alice", "correct horse", []string(nil)).
			Return(created, nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
			strings.NewReader(`{"username":"alice","password":"correct horse"}`))
		req.Header.Set("Content-Type", "application/json")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusCreated, w.Code)

		var response authhandler.V1RegisterResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, int64(1), response.ID)
		assert.Equal(t, []string{"user"}, response.Roles)
		mockService.AssertExpectations(t)
	})

	t.Run("error - validation failure", func(t *testing.T) {
		// Arrange
		mockService := auth.NewMockAuthService()
		mockService.On("Register", mock.Anything, "alice", "short", []string(nil)).
			Return((*domain.User)(nil), domain.NewValidationError([]domain.FieldError{
				{Field: "password", Message: "password must be at least 8 characters"},
			}))

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
			strings.NewReader(`{"username":"alice","password":"short"}`))
		req.Header.Set("Content-Type", "application/json")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - username taken", func(t *testing.T) {
		// Arrange
		mockService := auth.NewMockAuthService()
		mockService.On("Register", mock.Anything, "alice", "correct horse", []string(nil)).
			Return((*domain.User)(nil), domain.ErrAlreadyExists)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
			strings.NewReader(`{"username":"alice","password":"correct horse"}`))
		req.Header.Set("Content-Type", "application/json")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLoginV1(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		// Arrange
		expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

		mockService := auth.NewMockAuthService()
		mockService.On("Login", mock.Anything, "alice", "correct horse").
			Return("signed-token", expiresAt, nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"username":"alice","password":"correct horse"}`))
		req.Header.Set("Content-Type", "application/json")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)

		var response authhandler.V1LoginResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, "signed-token", response.Token)
		assert.True(t, response.ExpiresAt.Equal(expiresAt))
		mockService.AssertExpectations(t)
	})

	t.Run("error - bad credentials", func(t *testing.T) {
		// Arrange
		mockService := auth.NewMockAuthService()
		mockService.On("Login", mock.Anything, "alice", "wrong").
			Return("", time.Time{}, domain.ErrInvalidCredentials)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"username":"alice","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("error - invalid body", func(t *testing.T) {
		// Arrange
		mockService := auth.NewMockAuthService()
		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Login")
	})
}
