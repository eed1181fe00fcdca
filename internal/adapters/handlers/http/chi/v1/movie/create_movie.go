package movie

import (
	"encoding/json"
	"net/http"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// CreateMovieV1 is the function that handles movie creation
func (h *HandlerV1) CreateMovieV1(w http.ResponseWriter, r *http.Request) {

	var req V1MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	movie := &domain.Movie{
		Title:       req.Title,
		Description: req.Description,
		IsWatched:   req.IsWatched,
		DateWatched: req.DateWatched,
		Rating:      req.Rating,
		Genre:       req.Genre,
		PosterURL:   req.PosterURL,
		StudioID:    req.StudioID,
	}

	details, err := h.catalogService.CreateMovie(r.Context(), movie)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toResponse(details))
}
