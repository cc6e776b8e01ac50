package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/ThisisBizness/Study-Buddy/internal/config"
	"github.com/ThisisBizness/Study-Buddy/internal/domain"
	"github.com/ThisisBizness/Study-Buddy/internal/solver"
)

// contentGenerator is the slice of the Gemini SDK the solver actually calls.
// *genai.GenerativeModel satisfies it; tests substitute a stub.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Solver implements the solver.Engine interface using Google's Gemini API to
// produce structured tutoring answers for STEM problems.
type Solver struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// client owns the underlying API connection; kept for Close
	client *genai.Client

	// model is the configured generative model used for requests
	model contentGenerator

	// parser turns raw model text into a structured answer
	parser solver.ResponseParser
}

// NewSolver creates a new Gemini-backed Solver with the provided dependencies.
//
// The model is configured once at construction: a single candidate, the
// configured temperature and output-token limit, and safety settings covering
// the four fixed harm categories at the configured blocking threshold.
//
// Parameters:
//   - ctx: Context for client initialization, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name, and sampling settings
//   - parser: The parser applied to successful model responses
//
// Returns:
//   - A properly initialized Solver or an error if initialization fails
func NewSolver(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
	parser solver.ResponseParser,
) (*Solver, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if parser == nil {
		return nil, errors.New("parser cannot be nil")
	}

	// Validate configuration
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", solver.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", solver.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			solver.ErrInvalidConfig, err)
	}

	model := client.GenerativeModel(cfg.ModelName)
	model.SetCandidateCount(1)
	model.SetTemperature(cfg.Temperature)
	model.SetMaxOutputTokens(cfg.MaxOutputTokens)
	model.SafetySettings = safetySettings(cfg.SafetyThreshold)

	logger.InfoContext(ctx, "Gemini model configured",
		"model_name", cfg.ModelName,
		"temperature", cfg.Temperature,
		"max_output_tokens", cfg.MaxOutputTokens,
		"safety_threshold", cfg.SafetyThreshold)

	return &Solver{
		logger: logger.With(slog.String("component", "gemini_solver")),
		config: cfg,
		client: client,
		model:  model,
		parser: parser,
	}, nil
}

// Close releases the underlying API client. Safe to call on a Solver whose
// client was never created.
func (s *Solver) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Solve implements solver.Engine. It sends the problem to the Gemini API and
// maps the outcome onto the solver error taxonomy: transport failures become
// ErrAPIFailure, zero-candidate responses become ErrBlockedResponse with the
// block reason in the message, and unusable response content becomes
// ErrAPIFailure.
func (s *Solver) Solve(ctx context.Context, problem *domain.Problem) (*domain.StructuredAnswer, error) {
	if s.model == nil {
		return nil, fmt.Errorf("%w: gemini model is not available", solver.ErrModelUninitialized)
	}

	if problem == nil || (problem.Text == "" && !problem.HasImage()) {
		return nil, fmt.Errorf("%w: please provide either text or image input", solver.ErrNoInput)
	}

	parts := buildParts(problem)

	s.logger.InfoContext(ctx, "Calling Gemini API",
		"model_name", s.config.ModelName,
		"part_count", len(parts),
		"has_image", problem.HasImage(),
		"text_length", len(problem.Text))

	resp, err := s.model.GenerateContent(ctx, parts...)
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			s.logger.ErrorContext(ctx, "Gemini API call failed",
				"status_code", apiErr.Code,
				"error", err)
		} else {
			s.logger.ErrorContext(ctx, "Gemini API call failed",
				"error", err)
		}
		return nil, fmt.Errorf("%w: %v", solver.ErrAPIFailure, err)
	}

	result := classifyResponse(resp)
	switch result.Outcome {
	case solver.OutcomeBlocked:
		s.logger.WarnContext(ctx, "Gemini response blocked by safety filters",
			"details", result.BlockDetails)
		return nil, fmt.Errorf("%w: %s", solver.ErrBlockedResponse, result.BlockDetails)
	case solver.OutcomeFailure:
		s.logger.ErrorContext(ctx, "Gemini response had no usable content",
			"error", result.Err)
		return nil, result.Err
	}

	s.logger.DebugContext(ctx, "Received Gemini response",
		"response_length", len(result.RawText))

	answer, err := s.parser.Parse(result.RawText)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to build structured answer from response",
			"error", err)
		return nil, fmt.Errorf("%w: %v", solver.ErrUnexpected, err)
	}

	return answer, nil
}

// classifyResponse tags a raw API response as success, blocked or failure.
// The zero-candidate check runs before any text access; reading text off a
// blocked response is unsafe.
func classifyResponse(resp *genai.GenerateContentResponse) solver.ModelResult {
	if resp == nil || len(resp.Candidates) == 0 {
		return solver.BlockedResult(blockDetails(resp))
	}

	text := extractText(resp.Candidates[0])
	if text == "" {
		return solver.FailureResult(
			fmt.Errorf("%w: failed to access valid response content", solver.ErrAPIFailure))
	}

	return solver.SuccessResult(text)
}

// blockDetails renders the prompt feedback of a blocked response.
func blockDetails(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.PromptFeedback == nil ||
		resp.PromptFeedback.BlockReason == genai.BlockReasonUnspecified {
		return "No specific block reason provided."
	}

	feedback := resp.PromptFeedback
	return fmt.Sprintf("Reason: %s. Safety ratings: %s.",
		blockReasonText(feedback.BlockReason),
		formatSafetyRatings(feedback.SafetyRatings))
}

// extractText concatenates the text parts of a candidate. Non-text parts are
// skipped.
func extractText(candidate *genai.Candidate) string {
	if candidate == nil || candidate.Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}

// safetySettings builds the fixed four-category safety configuration, all
// categories sharing one blocking threshold.
func safetySettings(threshold string) []*genai.SafetySetting {
	block := blockThreshold(threshold)

	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}

	settings := make([]*genai.SafetySetting, 0, len(categories))
	for _, category := range categories {
		settings = append(settings, &genai.SafetySetting{
			Category:  category,
			Threshold: block,
		})
	}
	return settings
}

// blockThreshold maps the configured threshold name to the SDK constant,
// defaulting to medium-and-above for unknown values.
func blockThreshold(threshold string) genai.HarmBlockThreshold {
	switch threshold {
	case "none":
		return genai.HarmBlockNone
	case "low":
		return genai.HarmBlockLowAndAbove
	case "medium":
		return genai.HarmBlockMediumAndAbove
	case "high":
		return genai.HarmBlockOnlyHigh
	default:
		return genai.HarmBlockMediumAndAbove
	}
}

func blockReasonText(reason genai.BlockReason) string {
	switch reason {
	case genai.BlockReasonSafety:
		return "SAFETY"
	case genai.BlockReasonOther:
		return "OTHER"
	default:
		return "UNSPECIFIED"
	}
}

func harmCategoryText(category genai.HarmCategory) string {
	switch category {
	case genai.HarmCategoryHarassment:
		return "harassment"
	case genai.HarmCategoryHateSpeech:
		return "hate speech"
	case genai.HarmCategorySexuallyExplicit:
		return "sexually explicit"
	case genai.HarmCategoryDangerousContent:
		return "dangerous content"
	default:
		return "unknown"
	}
}

func probabilityText(probability genai.HarmProbability) string {
	switch probability {
	case genai.HarmProbabilityNegligible:
		return "negligible"
	case genai.HarmProbabilityLow:
		return "low"
	case genai.HarmProbabilityMedium:
		return "medium"
	case genai.HarmProbabilityHigh:
		return "high"
	default:
		return "unspecified"
	}
}

// formatSafetyRatings renders ratings as "category=probability" pairs.
func formatSafetyRatings(ratings []*genai.SafetyRating) string {
	if len(ratings) == 0 {
		return "none"
	}

	pairs := make([]string, 0, len(ratings))
	for _, rating := range ratings {
		if rating == nil {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s=%s",
			harmCategoryText(rating.Category),
			probabilityText(rating.Probability)))
	}

	if len(pairs) == 0 {
		return "none"
	}
	return strings.Join(pairs, ", ")
}
