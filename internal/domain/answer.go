package domain

import (
	"errors"
	"fmt"
)

// PracticeQuestionCount is the number of practice questions every
// structured answer must carry.
const PracticeQuestionCount = 2

// Answer-specific validation errors
var (
	// ErrAnswerSolutionEmpty is returned when an answer's solution is empty.
	ErrAnswerSolutionEmpty = errors.New("answer solution cannot be empty")

	// ErrAnswerExplanationEmpty is returned when an answer's explanation is empty.
	ErrAnswerExplanationEmpty = errors.New("answer explanation cannot be empty")

	// ErrAnswerPracticeCount is returned when an answer does not carry
	// exactly PracticeQuestionCount practice questions.
	ErrAnswerPracticeCount = errors.New("answer must have exactly two practice questions")
)

// StructuredAnswer is the canonical tutoring response returned to the caller
// regardless of which solver engine produced it: a step-by-step solution, a
// plain-language explanation, and exactly two practice questions.
type StructuredAnswer struct {
	Solution          string   `json:"solution"`
	Explanation       string   `json:"explanation"`
	PracticeQuestions []string `json:"practiceQuestions"`
}

// NewStructuredAnswer creates a new StructuredAnswer from the given parts.
// Returns an error if validation fails.
func NewStructuredAnswer(solution, explanation string, practiceQuestions []string) (*StructuredAnswer, error) {
	answer := &StructuredAnswer{
		Solution:          solution,
		Explanation:       explanation,
		PracticeQuestions: practiceQuestions,
	}

	if err := answer.Validate(); err != nil {
		return nil, err
	}

	return answer, nil
}

// Validate checks if the StructuredAnswer satisfies the response contract.
// Returns an error if any field fails validation.
func (a *StructuredAnswer) Validate() error {
	if a.Solution == "" {
		return ErrAnswerSolutionEmpty
	}

	if a.Explanation == "" {
		return ErrAnswerExplanationEmpty
	}

	if len(a.PracticeQuestions) != PracticeQuestionCount {
		return fmt.Errorf("%w: got %d", ErrAnswerPracticeCount, len(a.PracticeQuestions))
	}

	return nil
}
