package server

import (
	"net/http"

	"portfolio-api/internal/handlers"
	customMiddleware "portfolio-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options configures the router.
type Options struct {
	AllowedOrigins []string
	MaxBodyBytes   int64

	Health        *handlers.HealthHandler
	Collaboration *handlers.CollaborationHandler
	Guestbook     *handlers.GuestbookHandler

	// SubmissionLimiter throttles the form endpoints. Nil disables it.
	SubmissionLimiter *customMiddleware.RateLimiter
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(customMiddleware.BodySizeLimit(opts.MaxBodyBytes))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", opts.Health.Health)
		r.Get("/hello", opts.Health.Hello)
		r.Get("/guestbook", opts.Guestbook.List)

		// Public submission routes
		r.Group(func(r chi.Router) {
			if opts.SubmissionLimiter != nil {
				r.Use(opts.SubmissionLimiter.Middleware)
			}
			r.Post("/collaborate", opts.Collaboration.Submit)
			r.Post("/guestbook", opts.Guestbook.Submit)
		})
	})

	return r
}
