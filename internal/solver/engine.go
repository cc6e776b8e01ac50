package solver

import (
	"context"

	"github.com/ThisisBizness/Study-Buddy/internal/domain"
)

// Engine defines the interface for producing a structured tutoring answer
// from a student's problem. Implementations call a language model (or a
// local stand-in) and translate its output into the domain's answer shape.
type Engine interface {
	// Solve takes a validated problem and returns the structured answer
	// for it. The returned answer always satisfies
	// domain.StructuredAnswer.Validate.
	//
	// On failure the returned error wraps one of the package sentinels
	// (ErrNoInput, ErrBlockedResponse, ErrAPIFailure, ...) so callers can
	// classify it with errors.Is. The context governs cancellation and
	// deadlines for the underlying model call.
	Solve(ctx context.Context, problem *domain.Problem) (*domain.StructuredAnswer, error)
}
