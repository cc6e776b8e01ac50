// Package solver defines the problem-solving capability of the application:
// the Engine interface, the error taxonomy shared by all engines, the
// tagged result of a raw model invocation, and the parser that turns raw
// model text into a structured tutoring answer. It abstracts the details of
// LLM API integration (Gemini), allowing the application to solve STEM
// problems without coupling to a specific external service.
package solver
