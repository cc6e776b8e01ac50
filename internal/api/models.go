package api

// Common request/response structures

// SolveRequest defines the payload for the solve endpoint. Both fields are
// optional at the transport level; the service rejects requests that carry
// neither.
type SolveRequest struct {
	// TextProblem is the problem statement as plain text
	TextProblem string `json:"text_problem"`

	// ImageData is a base64-encoded image of the problem, with or without
	// a data URL prefix
	ImageData string `json:"image_data"`
}

// SolveResponse defines the successful response for the solve endpoint.
type SolveResponse struct {
	// Solution is the step-by-step solution text
	Solution string `json:"solution"`

	// Explanation covers the main concepts behind the solution
	Explanation string `json:"explanation"`

	// PracticeQuestions are similar problems for further practice
	// Field uses camelCase for frontend compatibility
	PracticeQuestions []string `json:"practiceQuestions"`
}

// HealthResponse defines the response for the health check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
