package movie

import (
	"net/http"
	"strconv"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// ListMoviesV1 is the function that handles the movie listing. Query params:
// filterOn/filterQuery, sortBy, ascending, page, pageSize.
func (h *HandlerV1) ListMoviesV1(w http.ResponseWriter, r *http.Request) {

	q := r.URL.Query()

	ascending := true
	if raw := q.Get("ascending"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "ascending must be a boolean", http.StatusBadRequest)
			return
		}
		ascending = parsed
	}

	filter := domain.MovieFilter{
		FilterOn:    q.Get("filterOn"),
		FilterQuery: q.Get("filterQuery"),
		SortBy:      q.Get("sortBy"),
		Ascending:   ascending,
	}

	pageNumber, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))

	movies, err := h.catalogService.ListMovies(r.Context(), filter, pageNumber, pageSize)
	if err != nil {
		h.writeError(w, err)
		return
	}

	items := make([]V1MovieResponse, 0, len(movies))
	for i := range movies {
		items = append(items, toResponse(&movies[i]))
	}
	h.writeJSON(w, http.StatusOK, items)
}
