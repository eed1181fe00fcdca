package asset

import (
	"net/http"
)

// ReplaceThumbnailV1 is the function that handles swapping the preview image
func (h *HandlerV1) ReplaceThumbnailV1(w http.ResponseWriter, r *http.Request) {

	id, ok := h.parseAssetID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		http.Error(w, "invalid multipart body", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	asset, err := h.assetService.ReplaceThumbnail(r.Context(), id, file, header.Filename, header.Size)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, h.toResponse(asset))
}
