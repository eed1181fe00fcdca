package studio

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 studio routes
type HandlerV1 struct {
	catalogService port.CatalogService
	logger         *slog.Logger
}

// NewStudioHandlerV1 creates HandlerV1
func NewStudioHandlerV1(service port.CatalogService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		catalogService: service,
		logger:         logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.CreateStudioV1)
	router.Get("/", h.ListStudiosV1)
	router.Get("/{studioID}", h.GetStudioV1)
	router.Put("/{studioID}", h.UpdateStudioV1)
	router.Delete("/{studioID}", h.DeleteStudioV1)

	return router
}

// V1StudioRequest is the body for creating or updating a studio
type V1StudioRequest struct {
	Name string `json:"name"`
}

// V1StudioResponse is one studio
type V1StudioResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

func (h *HandlerV1) writeError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
	case errors.Is(err, domain.ErrStudioNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrAlreadyExists):
		http.Error(w, "studio name already taken", http.StatusConflict)
	case errors.Is(err, domain.ErrStudioInUse):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("studio request failed", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}
}

func (h *HandlerV1) parseStudioID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "studioID"), 10, 64)
	if err != nil || id < 1 {
		http.Error(w, "studio id must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// CreateStudioV1 is the function that handles studio creation
func (h *HandlerV1) CreateStudioV1(w http.ResponseWriter, r *http.Request) {

	var req V1StudioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	studio, err := h.catalogService.CreateStudio(r.Context(), &domain.Studio{Name: req.Name})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, V1StudioResponse{ID: studio.ID, Name: studio.Name})
}

// GetStudioV1 is the function that handles fetching one studio
func (h *HandlerV1) GetStudioV1(w http.ResponseWriter, r *http.Request) {

	id, ok := h.parseStudioID(w, r)
	if !ok {
		return
	}

	studio, err := h.catalogService.GetStudio(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, V1StudioResponse{ID: studio.ID, Name: studio.Name})
}

// ListStudiosV1 is the function that handles the studio listing
func (h *HandlerV1) ListStudiosV1(w http.ResponseWriter, r *http.Request) {

	studios, err := h.catalogService.ListStudios(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	items := make([]V1StudioResponse, 0, len(studios))
	for _, studio := range studios {
		items = append(items, V1StudioResponse{ID: studio.ID, Name: studio.Name})
	}
	h.writeJSON(w, http.StatusOK, items)
}

// UpdateStudioV1 is the function that handles studio updates
func (h *HandlerV1) UpdateStudioV1(w http.ResponseWriter, r *http.Request) {

	id, ok := h.parseStudioID(w, r)
	if !ok {
		return
	}

	var req V1StudioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	studio, err := h.catalogService.UpdateStudio(r.Context(), &domain.Studio{ID: id, Name: req.Name})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, V1StudioResponse{ID: studio.ID, Name: studio.Name})
}

// DeleteStudioV1 is the function that handles studio deletion
func (h *HandlerV1) DeleteStudioV1(w http.ResponseWriter, r *http.Request) {

	id, ok := h.parseStudioID(w, r)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteStudio(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
