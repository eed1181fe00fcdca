package asset

import (
	"net/http"
)

// maxFormMemory caps how much of a multipart body is buffered in memory; the
// rest spills to temp files.
const maxFormMemory = 32 << 20

// UploadAssetV1 is the function that handles asset upload
func (h *HandlerV1) UploadAssetV1(w http.ResponseWriter, r *http.Request) {

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

	asset, err := h.assetService.Upload(r.Context(), file, header.Filename, header.Size, description)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, h.toResponse(asset))
}
