package asset

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 asset routes
type HandlerV1 struct {
	assetService  port.AssetService
	publicBaseURL string
	logger        *slog.Logger
}

// NewAssetHandlerV1 creates HandlerV1
func NewAssetHandlerV1(service port.AssetService, publicBaseURL string, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		assetService:  service,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.UploadAssetV1)
	router.Get("/", h.ListAssetsV1)
	router.Get("/all", h.ListAllAssetsV1)
	router.Get("/{assetID}", h.GetAssetV1)
	router.Patch("/{assetID}", h.UpdateAssetMetaV1)
	router.Put("/{assetID}/file", h.ReplaceAssetFileV1)
	router.Put("/{assetID}/thumbnail", h.ReplaceThumbnailV1)
	router.Delete("/{assetID}", h.DeleteAssetV1)
	router.Get("/{assetID}/download", h.DownloadAssetV1)

	return router
}

// V1AssetResponse is one asset in API responses
type V1AssetResponse struct {
	ID           int64     `json:"id"`
	FileURL      string    `json:"fileUrl"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	Extension    string    `json:"extension"`
	SizeBytes    int64     `json:"sizeBytes"`
	Description  string    `json:"description"`
	Title        string    `json:"title"`
	Intro        string    `json:"intro"`
	Genre        string    `json:"genre"`
	Year         *int      `json:"year,omitempty"`
	MovieID      *int64    `json:"movieId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (h *HandlerV1) toResponse(asset *domain.Asset) V1AssetResponse {
	resp := V1AssetResponse{
		ID:          asset.ID,
		FileURL:     h.publicBaseURL + "/uploads/" + asset.StoredFileName,
		Extension:   asset.FileExtension,
		SizeBytes:   asset.SizeBytes,
		Description: asset.Description,
		Title:       asset.Title,
		Intro:       asset.Intro,
		Genre:       asset.Genre,
		Year:        asset.Year,
		MovieID:     asset.MovieID,
		CreatedAt:   asset.CreatedAt,
		UpdatedAt:   asset.UpdatedAt,
	}
	if asset.ThumbnailFileName != "" {
		resp.ThumbnailURL = h.publicBaseURL + "/uploads/" + asset.ThumbnailFileName
	}
	return resp
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

// V1ValidationResponse is the body of a 400 caused by field validation
type V1ValidationResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields"`
}

// writeError maps domain errors onto transport status codes.
func (h *HandlerV1) writeError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.writeJSON(w, http.StatusBadRequest, V1ValidationResponse{
			Error:  "validation failed",
			Fields: validationErr.Fields,
		})
	case errors.Is(err, domain.ErrAssetNotFound), errors.Is(err, domain.ErrFileNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrStorageConsistency):
		h.logger.Error("storage consistency failure", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	default:
		h.logger.Error("asset request failed", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}
}
