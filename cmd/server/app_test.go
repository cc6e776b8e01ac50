package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThisisBizness/Study-Buddy/internal/config"
	"github.com/ThisisBizness/Study-Buddy/internal/service"
	"github.com/ThisisBizness/Study-Buddy/internal/solver"
)

// testConfig returns a configuration with sane server limits for tests.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "127.0.0.1",
			Port:           8080,
			LogLevel:       "info",
			MaxBodyBytes:   1024 * 1024,
			RequestTimeout: time.Minute,
		},
		LLM: config.LLMConfig{
			ModelName:       "gemini-2.5-pro-exp-03-25",
			Temperature:     0.2,
			MaxOutputTokens: 2048,
			SafetyThreshold: "medium",
			MockMode:        true,
		},
		Cache: config.CacheConfig{
			Enabled: false,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
}

// testApplication wires an application around the given engine directly,
// bypassing newApplication, so router tests control the engine exactly.
func testApplication(t *testing.T, engine solver.Engine) *application {
	t.Helper()

	logger := testLogger()
	solveService, err := service.NewSolveService(engine, "mock", logger)
	require.NoError(t, err)

	return &application{
		config:       testConfig(),
		logger:       logger,
		engine:       engine,
		engineName:   "mock",
		solveService: solveService,
	}
}

func TestNewApplicationMockMode(t *testing.T) {
	cfg := testConfig()
	cfg.LLM.MockMode = true

	app, err := newApplication(context.Background(), cfg, testLogger())

	require.NoError(t, err)
	assert.Equal(t, "mock", app.engineName)
	assert.NotNil(t, app.engine)
	assert.NotNil(t, app.solveService)
	assert.Nil(t, app.geminiSolver)
	assert.Nil(t, app.redisCache)
}

func TestNewApplicationWithoutCredentials(t *testing.T) {
	// Gemini mode without an API key: startup succeeds but no engine is
	// available, so solves report the model as uninitialized.
	cfg := testConfig()
	cfg.LLM.MockMode = false
	cfg.LLM.GeminiAPIKey = ""

	app, err := newApplication(context.Background(), cfg, testLogger())

	require.NoError(t, err)
	assert.Equal(t, "gemini", app.engineName)
	assert.Nil(t, app.engine)
	assert.NotNil(t, app.solveService)
}
