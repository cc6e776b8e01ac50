package api

import (
	"errors"
	"net/http"

	"github.com/ThisisBizness/Study-Buddy/internal/solver"
	"github.com/ThisisBizness/Study-Buddy/internal/solver/mock"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Client input errors
	case errors.Is(err, solver.ErrNoInput),
		errors.Is(err, solver.ErrInvalidImage):
		return http.StatusBadRequest

	// Server-side processing and upstream failures
	case errors.Is(err, solver.ErrImageProcessing),
		errors.Is(err, solver.ErrModelUninitialized),
		errors.Is(err, solver.ErrBlockedResponse),
		errors.Is(err, solver.ErrAPIFailure),
		errors.Is(err, mock.ErrSimulated):
		return http.StatusInternalServerError

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a stable, user-friendly error label based on
// the error type. Clients can match on these labels; the accompanying
// details field carries the specific message.
func GetSafeErrorMessage(err error) string {
	// Handle nil error
	if err == nil {
		return "Unexpected error"
	}

	switch {
	// Client input errors
	case errors.Is(err, solver.ErrNoInput):
		return "No input provided"

	case errors.Is(err, solver.ErrInvalidImage):
		return "Invalid image data"

	// Processing errors
	case errors.Is(err, solver.ErrImageProcessing):
		return "Image processing error"

	case errors.Is(err, solver.ErrModelUninitialized):
		return "Model not initialized"

	// Upstream model errors
	case errors.Is(err, solver.ErrBlockedResponse):
		return "Blocked Response"

	case errors.Is(err, solver.ErrAPIFailure):
		return "Google API error"

	case errors.Is(err, mock.ErrSimulated):
		return "Mock Error"

	// Default case for unknown errors
	default:
		return "Unexpected error"
	}
}
