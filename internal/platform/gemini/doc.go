// Package gemini implements the solver.Engine interface using Google's
// Gemini API. It assembles multimodal prompts from problem text and image
// bytes, applies fixed safety settings, classifies each response as
// successful, blocked or failed, and maps every failure mode onto the
// solver package's error taxonomy.
package gemini
