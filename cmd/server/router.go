package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ThisisBizness/Study-Buddy/internal/api"
	apiMiddleware "github.com/ThisisBizness/Study-Buddy/internal/api/middleware"
	"github.com/ThisisBizness/Study-Buddy/internal/platform/metrics"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware. Trace IDs come first so all later
	// middleware and handlers log with them.
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(cors.Handler(cors.Options{
		// The API is consumed by browser frontends served from anywhere
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(metrics.Middleware)
	r.Use(apiMiddleware.Recoverer(app.logger))
	r.Use(chimiddleware.RequestSize(app.config.Server.MaxBodyBytes))
	r.Use(chimiddleware.Timeout(app.config.Server.RequestTimeout))

	// Create API handlers using the application's services
	solveHandler := api.NewSolveHandler(app.solveService, app.config.Server.MaxBodyMB(), app.logger)

	// Register routes
	r.Post("/solve", solveHandler.Solve)
	r.Get("/health", api.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
