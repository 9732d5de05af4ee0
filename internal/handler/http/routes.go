package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withCORS())
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	router.Route("/api", func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Use(h.withSession)

		// public routes
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Get("/checkAuth", h.checkAuth)
		r.Get("/properties", h.listProperties)
		r.Get("/properties/category/{category}", h.listPropertiesByCategory)
		r.Get("/properties/{propertyID}", h.getProperty)
		r.Get("/version", h.getServerVersion)

		// routes with an authenticated user
		r.Group(func(r chi.Router) {
			r.Use(h.requireUser)

			r.Get("/getUserData", h.getUserData)
			r.Post("/properties", h.publishProperty)
			r.Post("/favorite", h.addFavorite)
			r.Delete("/favorite", h.removeFavorite)
			r.Get("/favorites", h.listFavorites)
			r.Post("/messages", h.sendMessage)
			r.Get("/messages", h.listMessages)
		})

		// admin routes
		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)

			r.Get("/users", h.listUsers)
			r.Put("/users/role/{userID}", h.changeRole)
			r.Delete("/users/{userID}", h.deleteUser)
		})
	})

	router.Get("/uploads/{filename}", h.servePhoto)

	return router
}

// withCORS allows the configured web origins to call the API with cookies.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
	}).Handler
}
