package asset_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/service/asset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type readSeekNopCloser struct {
	*bytes.Reader
}

func (readSeekNopCloser) Close() error { return nil }

func newContent(name, contentType, data string) *port.AssetContent {
	return &port.AssetContent{
		Content:     readSeekNopCloser{bytes.NewReader([]byte(data))},
		ContentType: contentType,
		FileName:    name,
		ModTime:     time.Now(),
	}
}

func TestDownloadAssetV1(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		// Arrange
		mockService := asset.NewMockAssetService()
		mockService.On("Download", mock.Anything, int64(3)).
			Return(newContent("abc.mp4", "video/mp4", "video bytes"), nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/asset/3/download", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "video/mp4", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		body, _ := io.ReadAll(w.Body)
		assert.Equal(t, "video bytes", string(body))
		mockService.AssertExpectations(t)
	})

	t.Run("success - byte range", func(t *testing.T) {
		// Arrange
		mockService := asset.NewMockAssetService()
		mockService.On("Download", mock.Anything, int64(3)).
			Return(newContent("abc.mp4", "video/mp4", "0123456789"), nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/asset/3/download", nil)
		req.Header.Set("Range", "bytes=5-")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusPartialContent, w.Code)
		body, _ := io.ReadAll(w.Body)
		assert.Equal(t, "56789", string(body))
	})

	t.Run("error - file missing", func(t *testing.T) {
		// Arrange
		mockService := asset.NewMockAssetService()
		mockService.On("Download", mock.Anything, int64(3)).
			Return((*port.AssetContent)(nil), domain.ErrFileNotFound)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/asset/3/download", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServeStoredV1(t *testing.T) {

	t.Run("success - inline", func(t *testing.T) {
		// Arrange
		mockService := asset.NewMockAssetService()
		mockService.On("OpenStored", mock.Anything, "abc.jpg").
			Return(newContent("abc.jpg", "image/jpeg", "jpeg bytes"), nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/uploads/abc.jpg", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
		assert.Empty(t, w.Header().Get("Content-Disposition"))
		mockService.AssertExpectations(t)
	})

	t.Run("error - missing file", func(t *testing.T) {
		// Arrange
		mockService := asset.NewMockAssetService()
		mockService.On("OpenStored", mock.Anything, "ghost.jpg").
			Return((*port.AssetContent)(nil), domain.ErrFileNotFound)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/uploads/ghost.jpg", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
