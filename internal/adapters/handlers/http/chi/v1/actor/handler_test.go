package actor_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chirouter "github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/handlers/http/chi"
	actorhandler "github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/handlers/http/chi/v1/actor"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/service/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(service port.CatalogService) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := actorhandler.NewActorHandlerV1(service, logger)
	return chirouter.NewRouter(logger, chirouter.RouterDeps{
		ActorHandler: handler,
		Env:          "test",
	})
}

func TestCreateActorV1(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		// Arrange
		mockService := catalog.NewMockCatalogService()
		mockService.On("CreateActor", mock.Anything, &domain.Actor{FullName: "Keanu Reeves"}).
			Return(&domain.Actor{ID: 1, FullName: "Keanu Reeves"}, nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/actor/",
			strings.NewReader(`{"fullName":"Keanu Reeves"}`))
		req.Header.Set("Content-Type", "application/json")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusCreated, w.Code)

		var response actorhandler.V1ActorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, int64(1), response.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("error - blank name", func(t *testing.T) {
		// Arrange
		mockService := catalog.NewMockCatalogService()
		mockService.On("CreateActor", mock.Anything, mock.Anything).
			Return((*domain.Actor)(nil), domain.NewValidationError([]domain.FieldError{
				{Field: "fullName", Message: "fullName is required"},
			}))

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/actor/",
			strings.NewReader(`{"fullName":"  "}`))
		req.Header.Set("Content-Type", "application/json")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateActorV1(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		// Arrange
		mockService := catalog.NewMockCatalogService()
		mockService.On("UpdateActor", mock.Anything, &domain.Actor{ID: 1, FullName: "Keanu C. Reeves"}).
			Return(&domain.Actor{ID: 1, FullName: "Keanu C. Reeves"}, nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/actor/1",
			strings.NewReader(`{"fullName":"Keanu C. Reeves"}`))
		req.Header.Set("Content-Type", "application/json")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - not found", func(t *testing.T) {
		// Arrange
		mockService := catalog.NewMockCatalogService()
		mockService.On("UpdateActor", mock.Anything, mock.Anything).
			Return((*domain.Actor)(nil), domain.ErrActorNotFound)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/actor/99",
			strings.NewReader(`{"fullName":"Nobody"}`))
		req.Header.Set("Content-Type", "application/json")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteActorV1(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		// Arrange
		mockService := catalog.NewMockCatalogService()
		mockService.On("DeleteActor", mock.Anything, int64(1)).Return(nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/actor/1", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - non numeric id", func(t *testing.T) {
		// Arrange
		mockService := catalog.NewMockCatalogService()
		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/actor/abc", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "DeleteActor")
	})
}

func TestListActorsV1(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		// Arrange
		mockService := catalog.NewMockCatalogService()
		mockService.On("ListActors", mock.Anything).
			Return([]domain.Actor{{ID: 1, FullName: "Keanu Reeves"}, {ID: 2, FullName: "Carrie-Anne Moss"}}, nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/actor/", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)

		var response []actorhandler.V1ActorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		require.Len(t, response, 2)
		assert.Equal(t, "Carrie-Anne Moss", response[1].FullName)
		mockService.AssertExpectations(t)
	})
}
