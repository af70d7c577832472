package assistant

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers AI routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/ai", func(r chi.Router) {
		r.Post("/", h.Generate)
		r.Post("/export", h.Export)
		r.Get("/generations", h.ListGenerations)
	})
}
