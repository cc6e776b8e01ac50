package domain

import "errors"

// Problem-specific validation errors
var (
	// ErrProblemEmpty is returned when a problem has neither text nor an image.
	ErrProblemEmpty = errors.New("problem must include text or an image")

	// ErrProblemImageEmpty is returned when a problem image has no data.
	ErrProblemImageEmpty = errors.New("problem image data cannot be empty")

	// ErrProblemImageMIMEEmpty is returned when a problem image has no MIME type.
	ErrProblemImageMIMEEmpty = errors.New("problem image MIME type cannot be empty")
)

// ProblemImage holds the decoded bytes of a submitted problem image together
// with the MIME type detected from those bytes. The MIME type is always
// derived from the decoded content, never from client-declared metadata.
type ProblemImage struct {
	Data     []byte `json:"-"`
	MIMEType string `json:"mime_type"`
}

// Problem represents a single STEM problem submitted for solving.
// At least one of Text or Image must be present.
type Problem struct {
	Text  string        `json:"text"`
	Image *ProblemImage `json:"image,omitempty"`
}

// NewProblem creates a new Problem from the given text and optional image.
// Returns an error if validation fails.
func NewProblem(text string, image *ProblemImage) (*Problem, error) {
	problem := &Problem{
		Text:  text,
		Image: image,
	}

	if err := problem.Validate(); err != nil {
		return nil, err
	}

	return problem, nil
}

// Validate checks if the Problem has usable input.
// Returns an error if neither text nor a well-formed image is present.
func (p *Problem) Validate() error {
	if p.Text == "" && p.Image == nil {
		return ErrProblemEmpty
	}

	if p.Image != nil {
		if len(p.Image.Data) == 0 {
			return ErrProblemImageEmpty
		}
		if p.Image.MIMEType == "" {
			return ErrProblemImageMIMEEmpty
		}
	}

	return nil
}

// HasImage reports whether the problem carries image input.
func (p *Problem) HasImage() bool {
	return p.Image != nil && len(p.Image.Data) > 0
}
