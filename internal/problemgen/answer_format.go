package problemgen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var fractionPattern = regexp.MustCompile(`^-?\d+/\d+$`)

// answerChecks holds the canonical-form rule for each answer type.
var answerChecks = map[AnswerType]func(string) error{
	AnswerTypeInteger:  checkInteger,
	AnswerTypeDecimal:  checkDecimal,
	AnswerTypeFraction: checkFraction,
	AnswerTypeText:     checkText,
}

// AnswerFormatValidator checks that the answer is written in the canonical
// form of its answer type and that the choices fit the question format.
type AnswerFormatValidator struct{}

func (v *AnswerFormatValidator) Name() string { return "answer-format" }

func (v *AnswerFormatValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if check, ok := answerChecks[q.AnswerType]; ok {
		if err := check(q.Answer); err != nil {
			return reject(v, "%s answer %q: %s", q.AnswerType, q.Answer, err)
		}
	}

	switch q.Format {
	case FormatMultipleChoice:
		if msg := checkChoices(q); msg != "" {
			return reject(v, "%s", msg)
		}
	case FormatNumeric:
		if len(q.Choices) > 0 {
			return reject(v, "numeric format must have empty choices")
		}
	}
	return nil
}

// checkChoices requires four distinct, non-empty options with the answer
// among them. It returns an empty string when the choices are fine.
func checkChoices(q *Question) string {
	if len(q.Choices) != len(optionLetters) {
		return fmt.Sprintf("multiple choice must have exactly %d choices, got %d", len(optionLetters), len(q.Choices))
	}
	seen := make(map[string]bool, len(q.Choices))
	matches := 0
	for i, c := range q.Choices {
		c = strings.TrimSpace(c)
		if c == "" {
			return fmt.Sprintf("choice %s is empty", optionLetters[i])
		}
		key := strings.ToLower(strings.Replace(c, ",", ".", 1))
		if seen[key] {
			return fmt.Sprintf("duplicate choice %q", c)
		}
		seen[key] = true
		if sameChoice(c, q.Answer, q.AnswerType) {
			matches++
		}
	}
	if matches == 0 {
		return fmt.Sprintf("answer %q not found in choices", q.Answer)
	}
	return ""
}

func checkInteger(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("not a whole number")
	}
	if strconv.Itoa(n) != s {
		return errors.New("has leading zeros or a sign")
	}
	return nil
}

// checkDecimal accepts "3.5" and "3,5" but rejects padded forms such as
// "3.50" or "03.5".
func checkDecimal(s string) error {
	if _, err := parseDecimal(s); err != nil {
		return errors.New("not a decimal number")
	}
	whole, frac, hasFrac := strings.Cut(strings.Replace(s, ",", ".", 1), ".")
	whole = strings.TrimPrefix(whole, "-")
	if n, _ := strconv.Atoi(whole); whole == "" || strconv.Itoa(n) != whole {
		return errors.New("whole part is not normalized")
	}
	if hasFrac && (frac == "" || strings.HasSuffix(frac, "0")) {
		return errors.New("has trailing zeros")
	}
	return nil
}

func checkFraction(s string) error {
	if !fractionPattern.MatchString(s) {
		return errors.New("does not match a/b")
	}
	f, err := parseValue(s, AnswerTypeFraction)
	if err != nil {
		return err
	}
	if f.String() != strings.TrimSpace(s) {
		return errors.New("not in lowest terms")
	}
	return nil
}

func checkText(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("empty")
	}
	return nil
}
