package actor

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

// HandlerV1 is the handler for v1 actor routes
type HandlerV1 struct {
	catalogService port.CatalogService
	logger         *slog.Logger
}

// NewActorHandlerV1 creates HandlerV1
func NewActorHandlerV1(service port.CatalogService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		catalogService: service,
		logger:         logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.CreateActorV1)
	router.Get("/", h.ListActorsV1)
	router.Get("/{actorID}", h.GetActorV1)
	router.Put("/{actorID}", h.UpdateActorV1)
	router.Delete("/{actorID}", h.DeleteActorV1)

	return router
}

// V1ActorRequest is the body for creating or updating an actor
type V1ActorRequest struct {
	FullName string `json:"fullName"`
}

// V1ActorResponse is one actor
type V1ActorResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
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
	case errors.Is(err, domain.ErrActorNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.logger.Error("actor request failed", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}
}

func (h *HandlerV1) parseActorID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "actorID"), 10, 64)
	if err != nil || id < 1 {
		http.Error(w, "actor id must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// CreateActorV1 is the function that handles actor creation
func (h *HandlerV1) CreateActorV1(w http.ResponseWriter, r *http.Request) {

	var req V1ActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	actor, err := h.catalogService.CreateActor(r.Context(), &domain.Actor{FullName: req.FullName})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, V1ActorResponse{ID: actor.ID, FullName: actor.FullName})
}

// GetActorV1 is the function that handles fetching one actor
func (h *HandlerV1) GetActorV1(w http.ResponseWriter, r *http.Request) {

	id, ok := h.parseActorID(w, r)
	if !ok {
		return
	}

	actor, err := h.catalogService.GetActor(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, V1ActorResponse{ID: actor.ID, FullName: actor.FullName})
}

// ListActorsV1 is the function that handles the actor listing
func (h *HandlerV1) ListActorsV1(w http.ResponseWriter, r *http.Request) {

	actors, err := h.catalogService.ListActors(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	items := make([]V1ActorResponse, 0, len(actors))
	for _, actor := range actors {
		items = append(items, V1ActorResponse{ID: actor.ID, FullName: actor.FullName})
	}
	h.writeJSON(w, http.StatusOK, items)
}

// UpdateActorV1 is the function that handles actor updates
func (h *HandlerV1) UpdateActorV1(w http.ResponseWriter, r *http.Request) {

	id, ok := h.parseActorID(w, r)
	if !ok {
		return
	}

	var req V1ActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	actor, err := h.catalogService.UpdateActor(r.Context(), &domain.Actor{ID: id, FullName: req.FullName})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, V1ActorResponse{ID: actor.ID, FullName: actor.FullName})
}

// DeleteActorV1 is the function that handles actor deletion
func (h *HandlerV1) DeleteActorV1(w http.ResponseWriter, r *http.Request) {

	id, ok := h.parseActorID(w, r)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteActor(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
