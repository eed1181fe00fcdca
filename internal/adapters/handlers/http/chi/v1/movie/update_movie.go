package movie

import (
	"encoding/json"
	"net/http"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// UpdateMovieV1 is the function that handles full movie updates
func (h *HandlerV1) UpdateMovieV1(w http.ResponseWriter, r *http.Request) {

	id, ok := parseID(w, r, "movieID")
	if !ok {
		return
	}

	var req V1MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	movie := &domain.Movie{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		IsWatched:   req.IsWatched,
		DateWatched: req.DateWatched,
		Rating:      req.Rating,
		Genre:       req.Genre,
		PosterURL:   req.PosterURL,
		StudioID:    req.StudioID,
	}

	details, err := h.catalogService.UpdateMovie(r.Context(), movie)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toResponse(details))
}
