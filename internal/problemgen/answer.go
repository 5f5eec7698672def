package problemgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/worksheetz/internal/fractions"
)

// maxDecimalPlaces bounds the digits kept when a decimal is read as a
// fraction over a power of ten.
const maxDecimalPlaces = 9

// parseValue reads an answer or operand as an exact rational. Decimals
// may use either the point or the Turkish comma.
func parseValue(s string, answerType AnswerType) (fractions.Fraction, error) {
	s = strings.TrimSpace(s)
	switch answerType {
	case AnswerTypeInteger:
		n, err := strconv.Atoi(s)
		if err != nil {
			return fractions.Fraction{}, fmt.Errorf("not an integer: %q", s)
		}
		return fractions.New(n, 1), nil
	case AnswerTypeDecimal:
		return parseDecimal(s)
	case AnswerTypeFraction:
		num, den, ok := strings.Cut(s, "/")
		if !ok {
			return fractions.Fraction{}, fmt.Errorf("not a fraction: %q", s)
		}
		n, errN := strconv.Atoi(strings.TrimSpace(num))
		d, errD := strconv.Atoi(strings.TrimSpace(den))
		if errN != nil || errD != nil {
			return fractions.Fraction{}, fmt.Errorf("not a fraction: %q", s)
		}
		if d == 0 {
			return fractions.Fraction{}, fmt.Errorf("zero denominator in %q", s)
		}
		return fractions.New(n, d), nil
	}
	return fractions.Fraction{}, fmt.Errorf("answer type %q has no numeric value", answerType)
}

func parseDecimal(s string) (fractions.Fraction, error) {
	s = strings.Replace(s, ",", ".", 1)
	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) > maxDecimalPlaces {
		return fractions.Fraction{}, fmt.Errorf("too many decimal places: %q", s)
	}
	neg := strings.HasPrefix(whole, "-")
	digits := strings.TrimPrefix(whole, "-") + frac
	n, err := strconv.Atoi(digits)
	if err != nil || strings.ContainsAny(digits, "+-") {
		return fractions.Fraction{}, fmt.Errorf("not a decimal: %q", s)
	}
	den := 1
	for range len(frac) {
		den *= 10
	}
	if neg {
		n = -n
	}
	return fractions.New(n, den), nil
}

// optionLetters label multiple-choice options on the sheet.
var optionLetters = []string{"A", "B", "C", "D"}

// displayNumber swaps the decimal point for the comma used on Turkish sheets.
func displayNumber(s string, answerType AnswerType) string {
	if answerType == AnswerTypeDecimal {
		return strings.Replace(s, ".", ",", 1)
	}
	return s
}

// sameChoice compares a choice with an answer the way a reader would:
// case-insensitive, and for decimals regardless of point or comma.
func sameChoice(choice, answer string, answerType AnswerType) bool {
	choice, answer = strings.TrimSpace(choice), strings.TrimSpace(answer)
	if answerType == AnswerTypeDecimal {
		choice = strings.Replace(choice, ",", ".", 1)
		answer = strings.Replace(answer, ",", ".", 1)
	}
	return strings.EqualFold(choice, answer)
}

// DisplayAnswer formats q's answer for the answer key. Multiple-choice
// answers are prefixed with their option letter.
func DisplayAnswer(q *Question) string {
	ans := displayNumber(strings.TrimSpace(q.Answer), q.AnswerType)
	if q.Format != FormatMultipleChoice {
		return ans
	}
	for i, c := range q.Choices {
		if i < len(optionLetters) && sameChoice(c, q.Answer, q.AnswerType) {
			return optionLetters[i] + ") " + ans
		}
	}
	return ans
}
