package asset

import (
	"encoding/json"
	"net/http"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// V1UpdateAssetMetaRequest is a partial metadata update. Absent fields are
// left untouched; present fields overwrite, empty strings included.
type V1UpdateAssetMetaRequest struct {
	Description *string `json:"description"`
	Title       *string `json:"title"`
	Intro       *string `json:"intro"`
	Genre       *string `json:"genre"`
	Year        *int    `json:"year"`
	MovieID     *int64  `json:"movieId"`
}

// UpdateAssetMetaV1 is the function that handles partial metadata updates
func (h *HandlerV1) UpdateAssetMetaV1(w http.ResponseWriter, r *http.Request) {

	id, ok := h.parseAssetID(w, r)
	if !ok {
		return
	}

	var req V1UpdateAssetMetaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	update := domain.AssetMetaUpdate{
		Description: req.Description,
		Title:       req.Title,
		Intro:       req.Intro,
		Genre:       req.Genre,
		Year:        req.Year,
		MovieID:     req.MovieID,
	}

	asset, err := h.assetService.UpdateMeta(r.Context(), id, update)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, h.toResponse(asset))
}
