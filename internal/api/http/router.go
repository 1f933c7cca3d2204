package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"
)

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	c := cors.New(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	r.Use(c.Handler)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Use(httprate.Limit(
		100,
		15*time.Second,
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", s.handleLogin)
			r.Post("/create", s.handleCreateAdmin)
			r.Post("/delete", s.handleDeleteAdmin)
			r.Post("/change-password", s.handleChangePassword)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.authsrv.WithAuth)

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/dashboard", s.handleDashboardStats)
				r.Get("/users", s.handleUsersOverview)
				r.Get("/bookings", s.handleBookingsOverview)
				r.Get("/hostels", s.handleHostelsOverview)
				r.Get("/revenue", s.handleRevenueOverview)
				r.Get("/activities", s.handleRecentActivities)
			})
		})
	})

	return r
}
