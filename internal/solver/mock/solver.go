// Package mock provides a deterministic, network-free solver engine for
// testing and demo environments. It satisfies the same contract as the real
// Gemini-backed engine: identical answer shape, identical error taxonomy,
// but canned content selected by simple keyword rules.
package mock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ThisisBizness/Study-Buddy/internal/domain"
	"github.com/ThisisBizness/Study-Buddy/internal/solver"
)

// ErrSimulated is returned when the problem text contains "error". It is a
// deliberate hook for exercising server-error paths without a real model.
var ErrSimulated = errors.New("simulated mock failure")

// rule pairs a category predicate with its canned answer. Rules are
// evaluated in order and the first match wins.
type rule struct {
	name    string
	matches func(text string, hasImage bool) bool
	answer  domain.StructuredAnswer
}

// Solver is a deterministic solver.Engine. It is safe for concurrent use;
// all state is read-only after construction.
type Solver struct {
	logger *slog.Logger
	rules  []rule
}

// NewSolver creates a mock Solver.
func NewSolver(logger *slog.Logger) (*Solver, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Solver{
		logger: logger.With(slog.String("component", "mock_solver")),
		rules:  cannedRules(),
	}, nil
}

// Solve implements solver.Engine. Matching is case-insensitive substring
// search over the problem text, in fixed rule order.
func (s *Solver) Solve(ctx context.Context, problem *domain.Problem) (*domain.StructuredAnswer, error) {
	if problem == nil || (problem.Text == "" && !problem.HasImage()) {
		return nil, fmt.Errorf("%w: please provide either text or image input", solver.ErrNoInput)
	}

	text := strings.ToLower(problem.Text)

	if text != "" && strings.Contains(text, "error") {
		return nil, fmt.Errorf("%w: this is a simulated error response for testing", ErrSimulated)
	}

	for _, r := range s.rules {
		if r.matches(text, problem.HasImage()) {
			s.logger.DebugContext(ctx, "Serving canned answer",
				slog.String("rule", r.name))
			// Copy so callers mutating the answer cannot corrupt the
			// shared rule table.
			answer := r.answer
			answer.PracticeQuestions = append([]string(nil), r.answer.PracticeQuestions...)
			return &answer, nil
		}
	}

	// The default rule matches everything, so this is unreachable.
	return nil, fmt.Errorf("%w: no mock rule matched", solver.ErrUnexpected)
}

func containsAny(text string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// cannedRules builds the ordered rule table. Note that the quadratic rule's
// single-letter "x" term makes it match most algebra-flavored text before
// any later rule is consulted.
func cannedRules() []rule {
	return []rule{
		{
			name: "quadratic",
			matches: func(text string, _ bool) bool {
				return text != "" && containsAny(text, "solve", "equation", "x", "quadratic")
			},
			answer: domain.StructuredAnswer{
				Solution: "Step 1: Identify the coefficients in the standard form ax² + bx + c = 0\n" +
					"Step 2: Use the quadratic formula x = (-b ± √(b² - 4ac)) / 2a\n" +
					"Step 3: Calculate the discriminant b² - 4ac\n" +
					"Step 4: Find the solutions x₁ = (-b + √(b² - 4ac)) / 2a and x₂ = (-b - √(b² - 4ac)) / 2a",
				Explanation: "The quadratic formula allows us to find the solutions to any quadratic equation. " +
					"The discriminant (b² - 4ac) tells us how many solutions exist: if positive, there are two real solutions; " +
					"if zero, there's one real solution; if negative, there are two complex solutions.",
				PracticeQuestions: []string{
					"Solve for x: 3x² - 6x + 2 = 0",
					"Solve for x: x² + 4x - 12 = 0",
				},
			},
		},
		{
			name: "physics",
			matches: func(text string, _ bool) bool {
				return text != "" && containsAny(text, "force", "velocity", "physics", "newton")
			},
			answer: domain.StructuredAnswer{
				Solution: "Step 1: Identify the given quantities and variables\n" +
					"Step 2: Determine the relevant physics formula\n" +
					"Step 3: Substitute the known values into the formula\n" +
					"Step 4: Solve for the unknown variable\n" +
					"Step 5: Check units and ensure the answer makes physical sense",
				Explanation: "This problem involves Newton's laws of motion, which describe the relationship between " +
					"an object and the forces acting upon it. The second law (F = ma) states that force equals mass times acceleration.",
				PracticeQuestions: []string{
					"A 2kg object experiences a net force of 10N. What is its acceleration?",
					"How much force is needed to accelerate a 1500kg car from 0 to 27 m/s in 10 seconds?",
				},
			},
		},
		{
			name: "chemistry",
			matches: func(text string, _ bool) bool {
				return text != "" && containsAny(text, "chemistry", "molecule", "reaction", "acid")
			},
			answer: domain.StructuredAnswer{
				Solution: "Step 1: Balance the chemical equation\n" +
					"Step 2: Identify reactants and products\n" +
					"Step 3: Calculate molar masses\n" +
					"Step 4: Apply stoichiometric principles\n" +
					"Step 5: Calculate the final answer",
				Explanation: "Chemical reactions follow the law of conservation of mass, meaning the total mass of the " +
					"elements before and after the reaction must be the same. This is why we balance chemical equations.",
				PracticeQuestions: []string{
					"Balance the following equation: H₂ + O₂ → H₂O",
					"How many grams of water can be produced from 4 grams of hydrogen gas reacting with excess oxygen?",
				},
			},
		},
		{
			name: "image",
			matches: func(_ string, hasImage bool) bool {
				return hasImage
			},
			answer: domain.StructuredAnswer{
				Solution: "Step 1: Analyze the problem presented in the image\n" +
					"Step 2: Apply the appropriate formula or theorem\n" +
					"Step 3: Solve step-by-step following mathematical rules\n" +
					"Step 4: Double-check the solution",
				Explanation: "This problem can be solved using algebraic manipulation. We isolate the variable by " +
					"performing the same operation on both sides of the equation, maintaining equality throughout the process.",
				PracticeQuestions: []string{
					"Try solving a similar problem with different values",
					"Solve the problem using an alternative method",
				},
			},
		},
		{
			name: "default",
			matches: func(_ string, _ bool) bool {
				return true
			},
			answer: domain.StructuredAnswer{
				Solution: "Here's a step-by-step solution to your problem:\n" +
					"1. First, understand what the problem is asking\n" +
					"2. Identify the key information and variables\n" +
					"3. Select the appropriate formula or approach\n" +
					"4. Solve methodically, showing each step\n" +
					"5. Verify the answer makes sense",
				Explanation: "This type of problem requires a systematic approach. By breaking it down into manageable " +
					"steps, we can solve it efficiently.",
				PracticeQuestions: []string{
					"Here's a similar problem to try: Can you solve a variation of this problem where the values are slightly different?",
					"Try this challenge problem that uses the same concept but in a different context.",
				},
			},
		},
	}
}
