package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// every auth route is reachable without a session; /auth/user resolves
	// the session itself and answers 404 for anonymous callers
	router.Group(func(r chi.Router) {
		r.Post("/auth/signup", h.signUp)
		r.Post("/auth/signin", h.signIn)
		r.Get("/auth/signout", h.signOut)
		r.Get("/auth/user", h.currentUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
