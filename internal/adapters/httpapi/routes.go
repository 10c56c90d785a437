package httpapi

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

func addRoutes(r chi.Router, logger zerolog.Logger, deps Deps) {
	r.Get("/healthz", handleHealth(deps.Sessions))

	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", handleCreateSession(logger, deps))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handleGetSession(logger, deps.Sessions))
			r.Post("/rounds", handleNextRound(logger, deps.Sessions))
			r.Post("/guesses", handleGuess(logger, deps.Sessions))
			r.Post("/end", handleEndSession(logger, deps.Sessions))
		})
	})
}
