package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const requestTimeout = 30 * time.Second

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware)
	r.Use(recoveryMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Use(timeoutMiddleware(requestTimeout))

		r.Route("/draws", func(r chi.Router) {
			r.Get("/", s.handleListDraws)
			r.Post("/", s.handleCreateDraw)
			r.Delete("/", s.handleDeleteAllDraws)
			r.Post("/import", s.handleImportDraws)
			r.Get("/{id}", s.handleGetDraw)
			r.Delete("/{id}", s.handleDeleteDraw)
		})

		r.Route("/rows", func(r chi.Router) {
			r.Get("/", s.handleListRows)
			r.Post("/", s.handleCreateRow)
			r.Delete("/{id}", s.handleDeleteRow)
		})

		r.Get("/winners", s.handleWinners)

		r.Route("/stats", func(r chi.Router) {
			r.Get("/frequencies", s.handleFrequencies)
			r.Get("/numbers", s.handleNumberStats)
			r.Get("/predictions", s.handlePredictions)
			r.Get("/chart", s.handleChart)
		})

		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handleUpdateSettings)
	})

	return r
}
