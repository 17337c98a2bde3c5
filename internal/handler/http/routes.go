package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestLogger)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Get("/api/status", h.getStatus)
		r.Get("/api/version", h.getVersion)

		r.Get("/api/records", h.listRecords)
		r.Post("/api/records", h.addRecord)
		r.Delete("/api/records", h.removeRecords)

		r.Post("/api/sync", h.triggerSync)

		r.Get("/api/selection", h.listSelection)
		r.Post("/api/selection/all", h.selectAll)
		r.Post("/api/selection/delete", h.deleteSelected)
		r.Post("/api/selection/{recordID}", h.selectRecord)
		r.Delete("/api/selection/{recordID}", h.deselectRecord)
		r.Delete("/api/selection", h.clearSelection)
	})

	return router
}
