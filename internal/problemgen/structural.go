package problemgen

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Length limits count runes; Turkish letters are multi-byte.
const (
	maxQuestionRunes    = 600
	maxExplanationRunes = 1000
)

var (
	knownFormats     = []AnswerFormat{FormatNumeric, FormatMultipleChoice}
	knownAnswerTypes = []AnswerType{AnswerTypeInteger, AnswerTypeDecimal, AnswerTypeFraction, AnswerTypeText}
)

// structuralRules run in order; each returns a failure message or "".
var structuralRules = []func(q *Question) string{
	func(q *Question) string { return textField("question_text", q.Text, maxQuestionRunes) },
	func(q *Question) string { return textField("explanation", q.Explanation, maxExplanationRunes) },
	func(q *Question) string {
		if q.Difficulty < 1 || q.Difficulty > 5 {
			return "difficulty must be between 1 and 5"
		}
		return ""
	},
	func(q *Question) string {
		if !slices.Contains(knownFormats, q.Format) {
			return fmt.Sprintf("format must be one of %q", knownFormats)
		}
		return ""
	},
	func(q *Question) string {
		if !slices.Contains(knownAnswerTypes, q.AnswerType) {
			return fmt.Sprintf("answer_type must be one of %q", knownAnswerTypes)
		}
		return ""
	},
	func(q *Question) string {
		if q.AnswerType == AnswerTypeText && q.Format != FormatMultipleChoice {
			return fmt.Sprintf("answer_type %q must use %q format", AnswerTypeText, FormatMultipleChoice)
		}
		return ""
	},
}

func textField(name, value string, limit int) string {
	switch {
	case value == "":
		return name + " is empty"
	case utf8.RuneCountInString(value) > limit:
		return fmt.Sprintf("%s exceeds %d characters", name, limit)
	}
	return ""
}

// StructuralValidator checks required fields, length limits and enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	for _, rule := range structuralRules {
		if msg := rule(q); msg != "" {
			return reject(v, "%s", msg)
		}
	}
	return nil
}
