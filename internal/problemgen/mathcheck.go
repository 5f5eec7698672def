package problemgen

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/worksheetz/internal/fractions"
)

// MathCheckValidator recomputes the first binary expression found in the
// question text and compares it with the claimed answer using exact
// rational arithmetic. Questions without such an expression pass.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	want, err := evalFirstExpression(q.Text)
	if err != nil {
		return nil
	}
	if q.AnswerType == AnswerTypeInteger && want.Den != 1 {
		// division with a remainder; the answer is the quotient or the
		// remainder, neither of which we can tell from the text
		return nil
	}
	got, err := parseValue(q.Answer, q.AnswerType)
	if err != nil {
		return nil
	}
	if got.Cmp(want) != 0 {
		return reject(v, "computed %s but LLM claimed %q", want.Answer(), q.Answer)
	}
	return nil
}

// operand matches 12, 3,5, 3.5 and 3/4. A slash without surrounding spaces
// belongs to the fraction; "144 / 12" is a division.
const operand = `(\d+(?:[.,]\d+)?(?:/\d+)?)`

var expressionRe = regexp.MustCompile(
	`(?:^|[^\d.,/])` + operand + `(?:\s*([+\-−×*÷])\s*|\s+([/:])\s+)` + operand,
)

var errNoExpression = errors.New("no arithmetic expression")

func evalFirstExpression(text string) (fractions.Fraction, error) {
	m := expressionRe.FindStringSubmatch(text)
	if m == nil {
		return fractions.Fraction{}, errNoExpression
	}
	a, err := parseOperand(m[1])
	if err != nil {
		return fractions.Fraction{}, err
	}
	b, err := parseOperand(m[4])
	if err != nil {
		return fractions.Fraction{}, err
	}
	op := m[2] + m[3]

	switch op {
	case "+":
		return a.Add(b), nil
	case "-", "−":
		return a.Sub(b), nil
	case "×", "*":
		return a.Mul(b), nil
	case "÷", "/", ":":
		if b.Num == 0 {
			return fractions.Fraction{}, errors.New("division by zero")
		}
		return a.Div(b), nil
	}
	return fractions.Fraction{}, fmt.Errorf("unsupported operator %q", op)
}

func parseOperand(s string) (fractions.Fraction, error) {
	if strings.Contains(s, "/") {
		if strings.ContainsAny(s, ".,") {
			return fractions.Fraction{}, fmt.Errorf("mixed operand %q", s)
		}
		return parseValue(s, AnswerTypeFraction)
	}
	return parseDecimal(s)
}
