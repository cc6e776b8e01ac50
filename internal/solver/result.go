package solver

// Outcome classifies a single raw model invocation.
type Outcome int

const (
	// OutcomeSuccess means the model returned usable answer text.
	OutcomeSuccess Outcome = iota

	// OutcomeBlocked means the model refused the request because of its
	// safety filters.
	OutcomeBlocked

	// OutcomeFailure means the call failed or returned unusable content.
	OutcomeFailure
)

// String returns a stable lowercase name for logging and metrics labels.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// ModelResult is the tagged outcome of one model invocation, before parsing.
// Exactly one of RawText, BlockDetails or Err is meaningful, selected by
// Outcome.
type ModelResult struct {
	// Outcome selects which field below carries the payload.
	Outcome Outcome

	// RawText is the model's answer text when Outcome is OutcomeSuccess.
	RawText string

	// BlockDetails is a human-readable description of why the request was
	// blocked when Outcome is OutcomeBlocked.
	BlockDetails string

	// Err is the underlying failure when Outcome is OutcomeFailure.
	Err error
}

// SuccessResult builds a ModelResult carrying answer text.
func SuccessResult(text string) ModelResult {
	return ModelResult{Outcome: OutcomeSuccess, RawText: text}
}

// BlockedResult builds a ModelResult carrying a safety-block description.
func BlockedResult(details string) ModelResult {
	return ModelResult{Outcome: OutcomeBlocked, BlockDetails: details}
}

// FailureResult builds a ModelResult carrying the underlying error.
func FailureResult(err error) ModelResult {
	return ModelResult{Outcome: OutcomeFailure, Err: err}
}
