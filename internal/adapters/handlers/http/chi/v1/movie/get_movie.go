package movie

import (
	"net/http"
)

// GetMovieV1 is the function that handles fetching one movie
func (h *HandlerV1) GetMovieV1(w http.ResponseWriter, r *http.Request) {

	id, ok := parseID(w, r, "movieID")
	if !ok {
		return
	}

	details, err := h.catalogService.GetMovie(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toResponse(details))
}
