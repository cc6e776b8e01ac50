package gemini

import (
	"github.com/google/generative-ai-go/genai"

	"github.com/ThisisBizness/Study-Buddy/internal/domain"
)

// solveInstructions is appended to every prompt, after the problem itself.
// The headings it requests are what a future section-extracting parser will
// key on.
const solveInstructions = `Please provide the following for the STEM problem:
1. A step-by-step solution.
2. A simple explanation of the main concepts.
3. Two similar practice questions.

Structure your response clearly with headings for Solution, Explanation, and Practice Questions.`

// buildParts assembles the multimodal prompt in fixed order: image bytes
// first when present, then the labeled problem text, then the instruction
// block.
func buildParts(problem *domain.Problem) []genai.Part {
	parts := make([]genai.Part, 0, 3)

	if problem.HasImage() {
		parts = append(parts, &genai.Blob{
			MIMEType: problem.Image.MIMEType,
			Data:     problem.Image.Data,
		})
	}

	if problem.Text != "" {
		parts = append(parts, genai.Text("Problem: "+problem.Text))
	}

	parts = append(parts, genai.Text(solveInstructions))

	return parts
}
