package http

import (
	"net/http"

	"github.com/eventojovem/api/internal/core/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(authService ports.AuthService, userHandler *UserHandler, participantHandler *ParticipantHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/users", userHandler.Create)
			r.Post("/login", userHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(Authenticator(authService))
				r.Get("/users", userHandler.List)
				r.Put("/users/{id}", userHandler.Update)
				r.Put("/users/{id}/password", userHandler.ChangePassword)
			})
		})

		r.Route("/participants", func(r chi.Router) {
			r.Use(Authenticator(authService))
			r.Get("/", participantHandler.List)
			r.Post("/", participantHandler.Create)
			r.Put("/payment/{id}", participantHandler.ConfirmPayment)
			r.Get("/{id}", participantHandler.Get)
			r.Put("/{id}", participantHandler.Update)
			r.Delete("/{id}", participantHandler.Delete)
		})
	})

	return r
}
