package stub

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Trailing slashes are ignored so both
// /auth/login and /auth/login/ reach the login handler.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID, h.withLogging)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	router.Route("/sessions", func(r chi.Router) {
		r.Get("/users/{userID}", h.getSessionsByUserID)
		r.Get("/{sessionID}", h.getSession)
		r.Patch("/{sessionID}", h.refreshSession)
		r.Delete("/{sessionID}", h.revokeSession)
	})

	router.Route("/users/{userID}", func(r chi.Router) {
		r.Delete("/", h.deleteUser)
		r.Delete("/sessions", h.revokeUserSessions)
	})

	return router
}
