package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listSelection(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.services.Selection.Selected())
}

func (h *Handler) selectRecord(w http.ResponseWriter, r *http.Request) {
	h.services.Selection.Select(chi.URLParam(r, "recordID"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deselectRecord(w http.ResponseWriter, r *http.Request) {
	h.services.Selection.Deselect(chi.URLParam(r, "recordID"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) selectAll(w http.ResponseWriter, r *http.Request) {
	h.services.Selection.SelectAll()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearSelection(w http.ResponseWriter, r *http.Request) {
	h.services.Selection.ClearSelection()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteSelected(w http.ResponseWriter, r *http.Request) {
	h.services.Selection.DeleteSelected(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
