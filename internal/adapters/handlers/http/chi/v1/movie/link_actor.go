package movie

import (
	"net/http"
)

// LinkActorV1 is the function that attaches an actor to a movie
func (h *HandlerV1) LinkActorV1(w http.ResponseWriter, r *http.Request) {

	movieID, ok := parseID(w, r, "movieID")
	if !ok {
		return
	}
	actorID, ok := parseID(w, r, "actorID")
	if !ok {
		return
	}

	if err := h.catalogService.LinkActor(r.Context(), movieID, actorID); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UnlinkActorV1 is the function that detaches an actor from a movie
func (h *HandlerV1) UnlinkActorV1(w http.ResponseWriter, r *http.Request) {

	movieID, ok := parseID(w, r, "movieID")
	if !ok {
		return
	}
	actorID, ok := parseID(w, r, "actorID")
	if !ok {
		return
	}

	if err := h.catalogService.UnlinkActor(r.Context(), movieID, actorID); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
