package fractions

import "github.com/abhisek/worksheetz/internal/problem"

// Type selects the kind of fraction exercise.
type Type string

const (
	FourOperations Type = "four-operations"
	Recognition    Type = "recognition"
	Comparison     Type = "comparison"
	Equivalence    Type = "equivalence"
	OfSet          Type = "fraction-of-set"
)

// Operation selects the operation for four-operations problems.
type Operation string

const (
	Addition       Operation = "addition"
	Subtraction    Operation = "subtraction"
	Multiplication Operation = "multiplication"
	Division       Operation = "division"
	Mixed          Operation = "mixed"
)

// Settings configures one fraction problem.
type Settings struct {
	Type        Type               `json:"type"`
	Operation   Operation          `json:"operation"`
	Difficulty  problem.Difficulty `json:"difficulty"`
	MaxAttempts int                `json:"maxAttempts,omitempty"`
}

// DefaultSettings returns easy fraction additions.
func DefaultSettings() Settings {
	return Settings{Type: FourOperations, Operation: Addition, Difficulty: problem.Easy}
}

func (s Settings) Validate() error {
	switch s.Type {
	case FourOperations, Recognition, Comparison, Equivalence, OfSet:
	default:
		return problem.InvalidSettings("unknown fraction problem type %q", s.Type)
	}
	if s.Type == FourOperations {
		switch s.Operation {
		case Addition, Subtraction, Multiplication, Division, Mixed:
		default:
			return problem.InvalidSettings("unknown operation %q", s.Operation)
		}
	}
	if !s.Difficulty.Valid() {
		return problem.InvalidSettings("unknown difficulty %q", s.Difficulty)
	}
	return nil
}
