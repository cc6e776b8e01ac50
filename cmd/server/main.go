// Package main implements the entry point for the Study Buddy API server
// which accepts STEM problems as text or images and returns structured,
// step-by-step answers generated by Gemini.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ThisisBizness/Study-Buddy/internal/config"
	"github.com/ThisisBizness/Study-Buddy/internal/platform/logger"
)

// main is the entry point for the study-buddy server.
// It loads configuration, sets up logging, wires the solver engine and
// services, and starts the HTTP server.
func main() {
	// Values from a local .env file are applied before configuration is
	// read. A missing file is fine; deployments set real env vars.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up structured logging using the configured log level
	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	appLogger.Info("Server configuration loaded",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"mock_mode", cfg.LLM.MockMode,
		"cache_enabled", cfg.Cache.Enabled)

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
