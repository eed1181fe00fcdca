package movie

import (
	"net/http"
)

// DeleteMovieV1 is the function that handles movie deletion
func (h *HandlerV1) DeleteMovieV1(w http.ResponseWriter, r *http.Request) {

	id, ok := parseID(w, r, "movieID")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteMovie(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
