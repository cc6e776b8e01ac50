package mocks

import (
	"context"
	"sync"

	"github.com/ThisisBizness/Study-Buddy/internal/domain"
	"github.com/ThisisBizness/Study-Buddy/internal/solver"
)

// MockEngine implements solver.Engine for testing
type MockEngine struct {
	// SolveFn allows test cases to mock the Solve behavior
	SolveFn func(ctx context.Context, problem *domain.Problem) (*domain.StructuredAnswer, error)

	// Default response values
	Answer *domain.StructuredAnswer
	Err    error

	// Call tracking for verification
	SolveCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Solve was called
		Count int

		// Problems contains all problems passed to Solve calls
		Problems []*domain.Problem

		// Contexts contains all contexts passed to Solve calls
		Contexts []context.Context
	}
}

// Solve implements the solver.Engine interface
func (m *MockEngine) Solve(
	ctx context.Context,
	problem *domain.Problem,
) (*domain.StructuredAnswer, error) {
	// Track call details for verification
	m.SolveCalls.mu.Lock()
	m.SolveCalls.Count++
	m.SolveCalls.Problems = append(m.SolveCalls.Problems, problem)
	m.SolveCalls.Contexts = append(m.SolveCalls.Contexts, ctx)
	m.SolveCalls.mu.Unlock()

	// Use custom function if provided
	if m.SolveFn != nil {
		return m.SolveFn(ctx, problem)
	}

	// Return default values
	return m.Answer, m.Err
}

// NewMockEngineWithAnswer creates a MockEngine that returns the specified answer
func NewMockEngineWithAnswer(answer *domain.StructuredAnswer) *MockEngine {
	return &MockEngine{
		Answer: answer,
	}
}

// NewMockEngineWithError creates a MockEngine that returns the specified error
func NewMockEngineWithError(err error) *MockEngine {
	return &MockEngine{
		Err: err,
	}
}

// NewMockEngineWithDefaultAnswer creates a MockEngine with a sample answer
func NewMockEngineWithDefaultAnswer() *MockEngine {
	answer, _ := domain.NewStructuredAnswer(
		"Step 1: Move the constant to the right side.\nStep 2: Divide both sides by the coefficient.",
		"Linear equations are solved by isolating the variable on one side.",
		[]string{"Solve for x: 4x + 2 = 10", "Solve for x: 7x - 3 = 11"},
	)

	return &MockEngine{
		Answer: answer,
	}
}

// MockEngineThatFails creates a MockEngine that simulates an upstream API failure
func MockEngineThatFails() *MockEngine {
	return &MockEngine{
		Err: solver.ErrAPIFailure,
	}
}

// MockEngineBlocked creates a MockEngine that simulates a safety-blocked response
func MockEngineBlocked() *MockEngine {
	return &MockEngine{
		Err: solver.ErrBlockedResponse,
	}
}

// Reset resets the call tracking state
func (m *MockEngine) Reset() {
	m.SolveCalls.mu.Lock()
	defer m.SolveCalls.mu.Unlock()

	m.SolveCalls.Count = 0
	m.SolveCalls.Problems = nil
	m.SolveCalls.Contexts = nil
}
