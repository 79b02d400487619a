package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/readlex/readlex-api/internal/api/middleware"
)

// NewRouter assembles the HTTP routes. Everything under /api requires the
// user ID header; /health does not.
func NewRouter(
	vocabulary *VocabularyHandler,
	reviews *ReviewHandler,
	sessions *SessionHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.UserMiddleware)

		r.Route("/vocabulary", func(r chi.Router) {
			r.Post("/", vocabulary.Create)
			r.Get("/", vocabulary.List)
			r.Post("/import", vocabulary.Import)
			r.Delete("/{id}", vocabulary.Delete)
			r.Post("/{id}/review", reviews.SubmitReview)
			r.Post("/{id}/simple-review", reviews.SubmitSimpleReview)
		})

		r.Route("/review", func(r chi.Router) {
			r.Get("/next", reviews.GetNextItem)
			r.Get("/due-count", reviews.DueCount)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessions.Start)
			r.Post("/{id}/finish", sessions.Finish)
		})

		r.Get("/stats", sessions.Stats)
	})

	return r
}
