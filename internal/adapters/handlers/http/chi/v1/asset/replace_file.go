package asset

import (
	"net/http"
)

// ReplaceAssetFileV1 is the function that handles swapping the physical file
func (h *HandlerV1) ReplaceAssetFileV1(w http.ResponseWriter, r *http.Request) {

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

	description := r.FormValue("description")

	asset, err := h.assetService.ReplaceFile(r.Context(), id, file, header.Filename, header.Size, description)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, h.toResponse(asset))
}
