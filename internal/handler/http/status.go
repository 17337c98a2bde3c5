package http

import "net/http"

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.services.Sync.Status())
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.buildInfo)
}
