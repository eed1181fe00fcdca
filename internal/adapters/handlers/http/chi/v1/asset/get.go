package asset

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// parseAssetID pulls the {assetID} route parameter, writing a 400 itself when
// it is not a positive integer.
func (h *HandlerV1) parseAssetID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "assetID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		http.Error(w, "asset id must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// GetAssetV1 is the function that handles fetching one asset
func (h *HandlerV1) GetAssetV1(w http.ResponseWriter, r *http.Request) {

	id, ok := h.parseAssetID(w, r)
	if !ok {
		return
	}

	asset, err := h.assetService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, h.toResponse(asset))
}
