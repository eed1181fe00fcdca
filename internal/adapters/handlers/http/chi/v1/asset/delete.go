package asset

import (
	"net/http"
)

// DeleteAssetV1 is the function that handles asset deletion
func (h *HandlerV1) DeleteAssetV1(w http.ResponseWriter, r *http.Request) {

	id, ok := h.parseAssetID(w, r)
	if !ok {
		return
	}

	if err := h.assetService.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
