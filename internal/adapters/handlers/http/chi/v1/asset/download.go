package asset

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DownloadAssetV1 streams the main file of an asset as an attachment.
// http.ServeContent handles Range and conditional headers, which matters for
// seeking inside videos.
func (h *HandlerV1) DownloadAssetV1(w http.ResponseWriter, r *http.Request) {

	id, ok := h.parseAssetID(w, r)
	if !ok {
		return
	}

	content, err := h.assetService.Download(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	defer content.Content.Close()

	w.Header().Set("Content-Type", content.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", content.FileName))
	http.ServeContent(w, r, content.FileName, content.ModTime, content.Content)
}

// ServeStoredV1 streams a stored file inline by its opaque name, for the
// /uploads/{storedName} route that asset URLs point at.
func (h *HandlerV1) ServeStoredV1(w http.ResponseWriter, r *http.Request) {

	storedName := chi.URLParam(r, "storedName")
	if storedName == "" {
		http.Error(w, "stored name is required", http.StatusBadRequest)
		return
	}

	content, err := h.assetService.OpenStored(r.Context(), storedName)
	if err != nil {
		h.writeError(w, err)
		return
	}
	defer content.Content.Close()

	w.Header().Set("Content-Type", content.ContentType)
	http.ServeContent(w, r, content.FileName, content.ModTime, content.Content)
}
