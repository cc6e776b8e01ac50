package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ThisisBizness/Study-Buddy/internal/api/shared"
	"github.com/ThisisBizness/Study-Buddy/internal/domain"
	"github.com/ThisisBizness/Study-Buddy/internal/platform/logger"
	"github.com/ThisisBizness/Study-Buddy/internal/service"
)

// SolveHandler handles problem-solving HTTP requests
type SolveHandler struct {
	solveService service.SolveService
	maxBodyMB    int64
	logger       *slog.Logger
}

// NewSolveHandler creates a new SolveHandler. maxBodyMB is only used to
// phrase the payload-too-large message; enforcement happens in the router's
// request size middleware.
func NewSolveHandler(
	solveService service.SolveService,
	maxBodyMB int64,
	logger *slog.Logger,
) *SolveHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SolveHandler")
	}

	return &SolveHandler{
		solveService: solveService,
		maxBodyMB:    maxBodyMB,
		logger:       logger.With(slog.String("component", "solve_handler")),
	}
}

// Solve handles POST /solve requests
// It accepts a text problem, a base64-encoded problem image, or both, and
// responds with the structured answer.
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		log.Debug("rejected request with unsupported content type",
			slog.String("content_type", contentType))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Request must be JSON")
		return
	}

	// Parse request body
	var req SolveRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge,
				"Request failed", err,
				shared.WithDetails(fmt.Sprintf("Input data too large. Maximum size is %dMB.", h.maxBodyMB)),
				shared.WithElevatedLogLevel())
		case errors.Is(err, io.EOF):
			shared.RespondWithError(w, r, http.StatusBadRequest, "Request body cannot be empty JSON")
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
				"Invalid JSON data received", err)
		}
		return
	}

	log.Debug("handling solve request",
		slog.Bool("has_text", req.TextProblem != ""),
		slog.Bool("has_image", req.ImageData != ""),
		slog.Int("image_bytes_approx", len(req.ImageData)*3/4))

	// Solve the problem
	answer, err := h.solveService.Solve(r.Context(), req.TextProblem, req.ImageData)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)

		// Log the full error details but only send the label and redacted
		// details to the client
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	// Transform domain object to response
	response := answerToResponse(answer)

	log.Debug("solve request succeeded",
		slog.Int("solution_length", len(response.Solution)),
		slog.Int("practice_questions", len(response.PracticeQuestions)))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// answerToResponse converts a domain.StructuredAnswer to a SolveResponse
func answerToResponse(answer *domain.StructuredAnswer) SolveResponse {
	return SolveResponse{
		Solution:          answer.Solution,
		Explanation:       answer.Explanation,
		PracticeQuestions: answer.PracticeQuestions,
	}
}
