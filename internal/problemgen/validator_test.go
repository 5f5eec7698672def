package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	err := reject(&DedupValidator{}, "seen %d times", 2)
	assert.Equal(t, `validator "dedup": seen 2 times`, err.Error())
	assert.True(t, err.Retryable)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	names := make([]string, 0, len(cfg.Validators))
	for _, v := range cfg.Validators {
		names = append(names, v.Name())
	}
	assert.Equal(t, []string{"structural", "answer-format", "math-check", "dedup"}, names)
	assert.Equal(t, 768, cfg.MaxTokens)
	assert.InDelta(t, 0.8, cfg.Temperature, 1e-9)
	assert.Equal(t, 12, cfg.MaxPriorQuestions)
	assert.Equal(t, 2, cfg.MaxRetries)
}

func TestDedupValidator(t *testing.T) {
	v := &DedupValidator{}
	q := validQuestion()
	require.Nil(t, v.Validate(q, GenerateInput{}))

	err := v.Validate(q, GenerateInput{PriorQuestions: []string{
		"Elma kaç TL?",
		"  " + q.Text + "  ",
	}})
	require.NotNil(t, err)
	assert.True(t, err.Retryable)
}

func TestDedupValidator_IgnoresCaseAndSpacing(t *testing.T) {
	q := &Question{Text: "Sepette 12 elma var."}
	err := (&DedupValidator{}).Validate(q, GenerateInput{PriorQuestions: []string{"SEPETTE   12 ELMA var."}})
	assert.NotNil(t, err)
}
