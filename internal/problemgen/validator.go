package problemgen

import (
	"context"
	"fmt"
)

// Generator produces one validated worksheet question per call.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) (*Question, error)
}

// Validator is one stage of the check chain run on every generated
// question. Implementations are stateless.
type Validator interface {
	// Name identifies the stage in errors and logs, e.g. "math-check".
	Name() string
	Validate(q *Question, input GenerateInput) *ValidationError
}

// ValidationError describes why a question was rejected.
type ValidationError struct {
	Validator string
	Message   string
	// Retryable is set when asking the model again may fix the question.
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// reject builds a retryable failure attributed to v.
func reject(v Validator, format string, args ...any) *ValidationError {
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf(format, args...),
		Retryable: true,
	}
}
