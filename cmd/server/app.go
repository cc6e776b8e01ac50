package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThisisBizness/Study-Buddy/internal/config"
	"github.com/ThisisBizness/Study-Buddy/internal/platform/cache"
	"github.com/ThisisBizness/Study-Buddy/internal/platform/gemini"
	"github.com/ThisisBizness/Study-Buddy/internal/service"
	"github.com/ThisisBizness/Study-Buddy/internal/solver"
	"github.com/ThisisBizness/Study-Buddy/internal/solver/mock"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Solver pipeline. engine is the effective engine handed to the solve
	// service, possibly wrapped by the answer cache. geminiSolver and
	// redisCache are kept separately for cleanup.
	engine       solver.Engine
	engineName   string
	geminiSolver *gemini.Solver
	redisCache   *cache.RedisCache

	// Service interfaces
	solveService service.SolveService
}

// newApplication creates a new application instance with all dependencies initialized.
// It accepts core dependencies like configuration and logger that must be
// established before application initialization.
//
// A Gemini initialization failure does not abort startup: the server comes up
// without an engine so the health endpoint stays reachable, and every solve
// reports the model as uninitialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	parser := solver.NewRawParser()

	// Select the solver engine
	if cfg.LLM.MockMode {
		app.engineName = "mock"

		mockSolver, err := mock.NewSolver(logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mock solver: %w", err)
		}
		app.engine = mockSolver
		logger.Warn("Running in mock mode, responses are canned and Gemini is never called")
	} else {
		app.engineName = "gemini"

		geminiSolver, err := gemini.NewSolver(ctx, logger, cfg.LLM, parser)
		if err != nil {
			logger.Error("Failed to initialize Gemini solver, continuing without an engine",
				"error", err)
		} else {
			app.geminiSolver = geminiSolver
			app.engine = geminiSolver
			logger.Info("Gemini solver initialized successfully",
				"model_name", cfg.LLM.ModelName)
		}
	}

	// Wrap the engine with the Redis answer cache when enabled
	if cfg.Cache.Enabled && app.engine != nil {
		redisCache := cache.NewRedisCache(
			cfg.Cache.RedisAddr,
			cfg.Cache.RedisPassword,
			cfg.Cache.RedisDB,
			cfg.Cache.TTL,
		)
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("Redis unreachable, continuing without answer cache",
				"error", err,
				"addr", cfg.Cache.RedisAddr)
			_ = redisCache.Close()
		} else {
			cached, err := solver.NewCachedEngine(app.engine, redisCache, logger)
			if err != nil {
				return nil, fmt.Errorf("failed to initialize answer cache: %w", err)
			}
			app.redisCache = redisCache
			app.engine = cached
			logger.Info("Answer cache enabled",
				"addr", cfg.Cache.RedisAddr,
				"ttl", cfg.Cache.TTL)
		}
	}

	// Initialize solve service
	solveService, err := service.NewSolveService(app.engine, app.engineName, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create solve service: %w", err)
	}
	app.solveService = solveService

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Set up router using the application dependencies
	router := app.setupRouter()

	// Start the HTTP server
	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	// Close Redis connection
	if app.redisCache != nil {
		if err := app.redisCache.Close(); err != nil {
			app.logger.Error("Error closing Redis connection", "error", err)
		}
	}

	// Close Gemini client
	if app.geminiSolver != nil {
		if err := app.geminiSolver.Close(); err != nil {
			app.logger.Error("Error closing Gemini client", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
