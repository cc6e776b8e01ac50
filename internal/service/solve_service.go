package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThisisBizness/Study-Buddy/internal/domain"
	"github.com/ThisisBizness/Study-Buddy/internal/image"
	"github.com/ThisisBizness/Study-Buddy/internal/platform/metrics"
	"github.com/ThisisBizness/Study-Buddy/internal/solver"
)

// SolveService provides the problem-solving use case: it normalizes raw
// request input into a domain problem and delegates to the configured
// solver engine.
type SolveService interface {
	// Solve takes the raw request fields (problem text and base64 image
	// data, either possibly empty) and returns the structured answer.
	// Failures wrap sentinels from the solver package.
	Solve(ctx context.Context, textProblem, imageData string) (*domain.StructuredAnswer, error)
}

// solveServiceImpl implements the SolveService interface
type solveServiceImpl struct {
	engine     solver.Engine
	engineName string
	logger     *slog.Logger
}

// NewSolveService creates a new SolveService backed by the given engine.
//
// A nil engine is accepted deliberately: when model initialization fails at
// startup the application keeps serving, and every solve then reports that
// the model is not initialized. engineName labels metrics and logs.
func NewSolveService(engine solver.Engine, engineName string, logger *slog.Logger) (SolveService, error) {
	if engineName == "" {
		return nil, errors.New("engine name cannot be empty")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &solveServiceImpl{
		engine:     engine,
		engineName: engineName,
		logger:     logger.With("component", "solve_service"),
	}, nil
}

// Solve implements SolveService.
func (s *solveServiceImpl) Solve(
	ctx context.Context,
	textProblem, imageData string,
) (*domain.StructuredAnswer, error) {
	start := time.Now()

	answer, err := s.solve(ctx, textProblem, imageData)

	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.SolveTotal(s.engineName, status)
	metrics.SolveDuration(s.engineName, status, time.Since(start))

	return answer, err
}

func (s *solveServiceImpl) solve(
	ctx context.Context,
	textProblem, imageData string,
) (*domain.StructuredAnswer, error) {
	// Input presence is checked before engine availability so that an
	// empty request is a client error even when the model never came up.
	if textProblem == "" && imageData == "" {
		s.logger.WarnContext(ctx, "solve called with no input")
		return nil, fmt.Errorf("%w: please provide either text or image input", solver.ErrNoInput)
	}

	if s.engine == nil {
		s.logger.ErrorContext(ctx, "solve called but no engine is available")
		return nil, fmt.Errorf("%w: gemini model is not available", solver.ErrModelUninitialized)
	}

	var problemImage *domain.ProblemImage
	if imageData != "" {
		data, mimeType, err := image.Decode(imageData)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to decode problem image",
				"error", err)
			return nil, err
		}

		s.logger.DebugContext(ctx, "decoded problem image",
			"mime_type", mimeType,
			"size_bytes", len(data))

		problemImage = &domain.ProblemImage{Data: data, MIMEType: mimeType}
	}

	problem, err := domain.NewProblem(textProblem, problemImage)
	if err != nil {
		// Unreachable with the checks above; kept as a guard.
		s.logger.ErrorContext(ctx, "failed to build problem",
			"error", err)
		return nil, fmt.Errorf("%w: %v", solver.ErrUnexpected, err)
	}

	answer, err := s.engine.Solve(ctx, problem)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "problem solved",
		"engine", s.engineName,
		"has_image", problem.HasImage(),
		"solution_length", len(answer.Solution))

	return answer, nil
}
