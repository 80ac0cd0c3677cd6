package api

import (
	"net/http"
	"ride-plan-service/internal/api/handlers"
	"ride-plan-service/internal/ports"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Store       ports.RideStore
	DB          handlers.Pinger
	CORSOrigins []string
	Log         *zap.Logger
	// Per-client request budget for /api routes. Zero disables limiting.
	RateLimit  int
	RateWindow time.Duration
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(cfg RouterConfig) http.Handler {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	healthHandler := &handlers.HealthHandler{Catalog: cfg.Store, DB: cfg.DB}
	rideHandler := &handlers.RideHandler{Store: cfg.Store}
	planHandler := &handlers.PlanHandler{Catalog: cfg.Store}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Route("/api", func(r chi.Router) {
		if cfg.RateLimit > 0 {
			r.Use(httprate.Limit(
				cfg.RateLimit,
				cfg.RateWindow,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(handlers.TooManyRequests),
			))
		}

		r.Get("/health", healthHandler.Health)
		r.Get("/rides", rideHandler.List)
		r.Post("/add_ride", rideHandler.Add)
		r.Post("/restrict_rides", rideHandler.Restrict)
		r.Post("/generate_plan", planHandler.Generate)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
