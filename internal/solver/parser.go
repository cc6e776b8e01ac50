package solver

import (
	"strings"

	"github.com/ThisisBizness/Study-Buddy/internal/domain"
)

// Placeholder values used while the model's answer is returned unparsed. The
// full model text is surfaced as the solution and the remaining fields point
// the reader at it.
const (
	explanationPlaceholder = "(Parsing needed - see solution)"
	practicePlaceholder    = "(Parsing needed)"
)

// ResponseParser turns raw model text into a structured answer.
type ResponseParser interface {
	// Parse builds a StructuredAnswer from the model's response text. The
	// returned answer always satisfies domain.StructuredAnswer.Validate.
	Parse(raw string) (*domain.StructuredAnswer, error)
}

// RawParser is the pass-through ResponseParser: the entire model response
// becomes the solution and the explanation and practice questions are filled
// with placeholders. Splitting the response into its sections is a model
// prompt concern that is not implemented yet.
type RawParser struct{}

// NewRawParser creates a RawParser.
func NewRawParser() *RawParser {
	return &RawParser{}
}

// Parse implements ResponseParser.
func (p *RawParser) Parse(raw string) (*domain.StructuredAnswer, error) {
	solution := strings.TrimSpace(raw)

	return domain.NewStructuredAnswer(
		solution,
		explanationPlaceholder,
		[]string{practicePlaceholder, practicePlaceholder},
	)
}
