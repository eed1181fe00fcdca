package asset

import (
	"net/http"
	"strconv"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// V1AssetPageResponse is one page of assets
type V1AssetPageResponse struct {
	PageNumber int               `json:"pageNumber"`
	PageSize   int               `json:"pageSize"`
	TotalCount int               `json:"totalCount"`
	TotalPages int               `json:"totalPages"`
	Items      []V1AssetResponse `json:"items"`
}

// ListAssetsV1 is the function that handles the paginated asset listing
func (h *HandlerV1) ListAssetsV1(w http.ResponseWriter, r *http.Request) {

	q := r.URL.Query()

	filter := domain.AssetFilter{
		Query: q.Get("q"),
	}

	switch mediaType := q.Get("type"); mediaType {
	case "", string(domain.MediaTypeAll):
		filter.Type = domain.MediaTypeAll
	case string(domain.MediaTypeImage):
		filter.Type = domain.MediaTypeImage
	case string(domain.MediaTypeVideo):
		filter.Type = domain.MediaTypeVideo
	default:
		http.Error(w, "type must be all, image or video", http.StatusBadRequest)
		return
	}

	if raw := q.Get("movieId"); raw != "" {
		movieID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "movieId must be an integer", http.StatusBadRequest)
			return
		}
		filter.MovieID = movieID
	}

	pageNumber, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))

	page, err := h.assetService.List(r.Context(), filter, pageNumber, pageSize)
	if err != nil {
		h.writeError(w, err)
		return
	}

	items := make([]V1AssetResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, h.toResponse(&page.Items[i]))
	}

	h.writeJSON(w, http.StatusOK, V1AssetPageResponse{
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
		Items:      items,
	})
}

// ListAllAssetsV1 is the function that handles the unpaginated asset listing
func (h *HandlerV1) ListAllAssetsV1(w http.ResponseWriter, r *http.Request) {

	assets, err := h.assetService.ListAll(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	items := make([]V1AssetResponse, 0, len(assets))
	for i := range assets {
		items = append(items, h.toResponse(&assets[i]))
	}
	h.writeJSON(w, http.StatusOK, items)
}
