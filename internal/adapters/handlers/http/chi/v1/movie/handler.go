package movie

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 movie routes
type HandlerV1 struct {
	catalogService port.CatalogService
	logger         *slog.Logger
}

// NewMovieHandlerV1 creates HandlerV1
func NewMovieHandlerV1(service port.CatalogService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		catalogService: service,
		logger:         logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.CreateMovieV1)
	router.Get("/", h.ListMoviesV1)
	router.Get("/{movieID}", h.GetMovieV1)
	router.Put("/{movieID}", h.UpdateMovieV1)
	router.Delete("/{movieID}", h.DeleteMovieV1)
	router.Post("/{movieID}/actors/{actorID}", h.LinkActorV1)
	router.Delete("/{movieID}/actors/{actorID}", h.UnlinkActorV1)

	return router
}

// V1MovieRequest is the body for creating or updating a movie
type V1MovieRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IsWatched   bool       `json:"isWatched"`
	DateWatched *time.Time `json:"dateWatched"`
	Rating      *int       `json:"rating"`
	Genre       string     `json:"genre"`
	PosterURL   string     `json:"posterUrl"`
	StudioID    int64      `json:"studioId"`
}

// V1MovieResponse is one movie joined with its studio and actors
type V1MovieResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IsWatched   bool       `json:"isWatched"`
	DateWatched *time.Time `json:"dateWatched,omitempty"`
	Rating      *int       `json:"rating,omitempty"`
	Genre       string     `json:"genre"`
	PosterURL   string     `json:"posterUrl"`
	DateAdded   time.Time  `json:"dateAdded"`
	StudioID    int64      `json:"studioId"`
	StudioName  string     `json:"studioName"`
	Actors      []string   `json:"actors"`
}

func toResponse(details *domain.MovieDetails) V1MovieResponse {
	actors := details.ActorNames
	if actors == nil {
		actors = []string{}
	}
	return V1MovieResponse{
		ID:          details.ID,
		Title:       details.Title,
		Description: details.Description,
		IsWatched:   details.IsWatched,
		DateWatched: details.DateWatched,
		Rating:      details.Rating,
		Genre:       details.Genre,
		PosterURL:   details.PosterURL,
		DateAdded:   details.DateAdded,
		StudioID:    details.StudioID,
		StudioName:  details.StudioName,
		Actors:      actors,
	}
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
	case errors.Is(err, domain.ErrMovieNotFound),
		errors.Is(err, domain.ErrActorNotFound),
		errors.Is(err, domain.ErrStudioNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrAlreadyExists):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("movie request failed", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}
}

func parseID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id < 1 {
		http.Error(w, param+" must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
