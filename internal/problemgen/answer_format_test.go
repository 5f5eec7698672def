package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerFormat_CanonicalForms(t *testing.T) {
	tests := []struct {
		answerType AnswerType
		valid      []string
		invalid    []string
	}{
		{AnswerTypeInteger, []string{"42", "0", "-5", "1000"}, []string{"3.5", "abc", "3/4", "007", "+5", ""}},
		{AnswerTypeDecimal, []string{"3.5", "0.75", "-2.1", "0", "100", "3,5", "-0,25"}, []string{"abc", "3.50", "3,50", "03,5", "3,", ""}},
		{AnswerTypeFraction, []string{"3/4", "1/2", "-7/3", "1/1"}, []string{"3/0", "2/4", "abc", "3.5", "1 1/2", ""}},
	}

	v := &AnswerFormatValidator{}
	for _, tt := range tests {
		t.Run(string(tt.answerType), func(t *testing.T) {
			for _, a := range tt.valid {
				q := questionWith(func(q *Question) { q.AnswerType, q.Answer = tt.answerType, a })
				assert.Nil(t, v.Validate(q, GenerateInput{}), "%q should be accepted", a)
			}
			for _, a := range tt.invalid {
				q := questionWith(func(q *Question) { q.AnswerType, q.Answer = tt.answerType, a })
				err := v.Validate(q, GenerateInput{})
				if assert.NotNil(t, err, "%q should be rejected", a) {
					assert.Equal(t, "answer-format", err.Validator)
				}
			}
		})
	}
}

func multipleChoice(answer string, choices ...string) func(q *Question) {
	return func(q *Question) {
		q.Format = FormatMultipleChoice
		q.Answer = answer
		q.Choices = choices
	}
}

func TestAnswerFormat_Choices(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(q *Question)
		wantMsg string
	}{
		{"valid", multipleChoice("623", "612", "623", "633", "652"), ""},
		{"three choices", multipleChoice("623", "612", "623", "633"), "exactly 4 choices"},
		{"duplicate", multipleChoice("623", "612", "623", "623", "652"), "duplicate choice"},
		{"blank option", multipleChoice("623", "612", "623", " ", "652"), "choice C is empty"},
		{"answer missing", multipleChoice("999", "612", "623", "633", "652"), "not found in choices"},
		{"numeric with choices", func(q *Question) { q.Choices = []string{"1", "2", "3", "4"} }, "must have empty choices"},
	}

	v := &AnswerFormatValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(questionWith(tt.edit), GenerateInput{})
			if tt.wantMsg == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Contains(t, err.Message, tt.wantMsg)
		})
	}
}

func TestAnswerFormat_DecimalChoicesIgnoreSeparator(t *testing.T) {
	v := &AnswerFormatValidator{}

	q := questionWith(multipleChoice("2.5", "2,5", "2,25", "3", "3,5"))
	q.AnswerType = AnswerTypeDecimal
	require.Nil(t, v.Validate(q, GenerateInput{}))
	assert.Equal(t, "A) 2,5", DisplayAnswer(q))

	q.Choices = []string{"2,5", "2.5", "3", "3,5"}
	err := v.Validate(q, GenerateInput{})
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "duplicate")
}

func TestAnswerFormat_TextAnswer(t *testing.T) {
	v := &AnswerFormatValidator{}

	q := questionWith(multipleChoice("Salı", "Pazartesi", "salı", "Çarşamba", "Perşembe"))
	q.AnswerType = AnswerTypeText
	assert.Nil(t, v.Validate(q, GenerateInput{}))
	assert.Equal(t, "B) Salı", DisplayAnswer(q))

	q.Answer = " "
	assert.NotNil(t, v.Validate(q, GenerateInput{}))
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in         string
		answerType AnswerType
		num, den   int
	}{
		{"12", AnswerTypeInteger, 12, 1},
		{"3,75", AnswerTypeDecimal, 15, 4},
		{"-0.5", AnswerTypeDecimal, -1, 2},
		{"6/8", AnswerTypeFraction, 3, 4},
		{" 4 / 2 ", AnswerTypeFraction, 2, 1},
	}
	for _, tt := range tests {
		f, err := parseValue(tt.in, tt.answerType)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.num, f.Num, tt.in)
		assert.Equal(t, tt.den, f.Den, tt.in)
	}

	for _, bad := range []string{"1/0", "x/2", "1.2345678901"} {
		_, err := parseValue(bad, AnswerTypeFraction)
		assert.Error(t, err, bad)
	}
	_, err := parseValue("Salı", AnswerTypeText)
	assert.Error(t, err)
}
