package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts the API under /api next to /health and /metrics.
func NewRouter(h *Handler, origins []string, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(h.metrics.Middleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/users", h.listUsers)
		r.Get("/user/{email}", h.getUser)
		r.Get("/user/{email}/enrollments", h.userEnrollments)
		r.Get("/enrollments", h.listEnrollments)
		r.With(h.checkBearer).Get("/export", h.export)

		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/enroll", h.enroll)
		r.With(h.checkBearer).Post("/clear", h.clear)

		r.Post("/admin/login", h.adminLogin)
		r.Get("/admin/session", h.adminSession)
	})

	return r
}
