// Package arithmetic generates whole-number addition, subtraction,
// multiplication and division problems with controlled regrouping.
package arithmetic

import (
	"github.com/abhisek/worksheetz/internal/problem"
)

// Operation selects the arithmetic operation.
type Operation string

const (
	Addition       Operation = "addition"
	Subtraction    Operation = "subtraction"
	Multiplication Operation = "multiplication"
	Division       Operation = "division"
	// Mixed picks one of the four operations per problem.
	Mixed Operation = "mixed"
)

// Regrouping selects whether an addition carries or a subtraction borrows.
type Regrouping string

const (
	WithRegrouping    Regrouping = "with"
	WithoutRegrouping Regrouping = "without"
	RandomRegrouping  Regrouping = "random"
)

// DivisionType selects whether divisions leave a remainder.
type DivisionType string

const (
	NoRemainder   DivisionType = "no-remainder"
	WithRemainder DivisionType = "with-remainder"
)

// MaxDigits is the largest operand length supported.
const MaxDigits = 7

// Settings configures one arithmetic problem.
type Settings struct {
	Operation    Operation       `json:"operation"`
	Digits1      int             `json:"digits1"`
	Digits2      int             `json:"digits2"`
	CarryBorrow  Regrouping      `json:"carryBorrow"`
	Format       problem.Display `json:"format"`
	DivisionType DivisionType    `json:"divisionType"`
	// WordsMode writes numbers in words inside a sentence template.
	WordsMode   bool `json:"wordsMode"`
	MaxAttempts int  `json:"maxAttempts,omitempty"`
}

// DefaultSettings returns two-digit additions with random regrouping.
func DefaultSettings() Settings {
	return Settings{
		Operation:    Addition,
		Digits1:      2,
		Digits2:      2,
		CarryBorrow:  RandomRegrouping,
		Format:       problem.DisplayInline,
		DivisionType: NoRemainder,
	}
}

// Validate reports the first out-of-range field.
func (s Settings) Validate() error {
	switch s.Operation {
	case Addition, Subtraction, Multiplication, Division, Mixed:
	default:
		return problem.InvalidSettings("unknown operation %q", s.Operation)
	}
	if s.Digits1 < 1 || s.Digits1 > MaxDigits || s.Digits2 < 1 || s.Digits2 > MaxDigits {
		return problem.InvalidSettings("digit counts must be between 1 and %d, got %d and %d", MaxDigits, s.Digits1, s.Digits2)
	}
	switch s.CarryBorrow {
	case WithRegrouping, WithoutRegrouping, RandomRegrouping:
	default:
		return problem.InvalidSettings("unknown carry/borrow mode %q", s.CarryBorrow)
	}
	switch s.Format {
	case problem.DisplayInline, problem.DisplayVertical, problem.DisplayLongDivision:
	default:
		return problem.InvalidSettings("unknown format %q", s.Format)
	}
	switch s.DivisionType {
	case NoRemainder, WithRemainder:
	default:
		return problem.InvalidSettings("unknown division type %q", s.DivisionType)
	}
	if s.Operation == Division && s.Digits2 > s.Digits1 {
		return problem.InvalidSettings("divisor cannot have more digits than the dividend")
	}
	if s.Operation == Subtraction && s.CarryBorrow == WithRegrouping && !borrowFeasible(s.Digits1, s.Digits2) {
		return problem.InvalidSettings("a one-digit subtraction cannot borrow")
	}
	return nil
}
