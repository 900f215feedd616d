package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/kidlingo/internal/cards"
)

// Candidate is one card element from the model on its way to the store.
type Candidate struct {
	Index int
	Raw   json.RawMessage

	// Card is nil when Raw could not be decoded.
	Card      *cards.Payload
	DecodeErr error
}

// Validator checks a candidate card before it is enriched and persisted.
type Validator interface {
	// Name returns a short identifier used in skip logs.
	Name() string

	// Validate returns nil if the candidate passes.
	Validate(c *Candidate) *ValidationError
}

// ValidationError describes why a candidate card was skipped.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the checks every candidate goes through.
func DefaultValidators() []Validator {
	return []Validator{shapeValidator{}, contentValidator{}}
}

// shapeValidator rejects elements that are not JSON objects.
type shapeValidator struct{}

func (shapeValidator) Name() string { return "shape" }

func (v shapeValidator) Validate(c *Candidate) *ValidationError {
	if c.DecodeErr != nil || c.Card == nil {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("not a card object: %v", c.DecodeErr)}
	}
	return nil
}

// contentValidator requires a question, prompt, or answer after the text
// has been cleaned.
type contentValidator struct{}

func (contentValidator) Name() string { return "content" }

func (v contentValidator) Validate(c *Candidate) *ValidationError {
	p := c.Card
	if p.QuestionText != "" || p.PromptText != "" || p.CorrectAnswer != nil {
		return nil
	}
	return &ValidationError{Validator: v.Name(), Message: "question, prompt and answer are all empty"}
}
