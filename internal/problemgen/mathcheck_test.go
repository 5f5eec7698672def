package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMathCheck(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		answer     string
		answerType AnswerType
		wantReject bool
	}{
		{"addition", "345 + 278 işleminin sonucu kaçtır?", "623", AnswerTypeInteger, false},
		{"wrong addition", "345 + 278 işleminin sonucu kaçtır?", "612", AnswerTypeInteger, true},
		{"subtraction", "567 - 289 = ?", "278", AnswerTypeInteger, false},
		{"wrong subtraction", "567 - 289 = ?", "288", AnswerTypeInteger, true},
		{"unicode minus", "4,2 − 1,7 = ?", "2.5", AnswerTypeDecimal, false},
		{"star multiplication", "23 * 45 işleminin sonucu kaçtır?", "1035", AnswerTypeInteger, false},
		{"times sign", "12 × 11 = ?", "132", AnswerTypeInteger, false},
		{"wrong product", "23 * 45 işleminin sonucu kaçtır?", "1025", AnswerTypeInteger, true},
		{"spaced slash division", "144 / 12 işleminin sonucu kaçtır?", "12", AnswerTypeInteger, false},
		{"wrong quotient", "144 / 12 işleminin sonucu kaçtır?", "11", AnswerTypeInteger, true},
		{"colon division", "56 : 8 işleminin sonucu kaçtır?", "7", AnswerTypeInteger, false},
		{"comma decimals", "2,5 + 1,25 işleminin sonucu kaçtır?", "3,75", AnswerTypeDecimal, false},
		{"wrong decimal sum", "2,5 + 1,25 işleminin sonucu kaçtır?", "3,5", AnswerTypeDecimal, true},
		{"decimal times integer", "0,5 × 3 = ?", "1.5", AnswerTypeDecimal, false},
		{"fraction sum", "1/4 + 1/2 işleminin sonucu kaçtır?", "3/4", AnswerTypeFraction, false},
		{"unreduced wrong fraction", "1/4 + 1/2 işleminin sonucu kaçtır?", "2/6", AnswerTypeFraction, true},
		{"fraction difference", "3/4 - 1/3 işleminin sonucu kaçtır?", "5/12", AnswerTypeFraction, false},
		{"fraction product", "2/3 * 3/4 işleminin sonucu kaçtır?", "1/2", AnswerTypeFraction, false},
		{"fraction quotient is whole", "1/2 ÷ 1/4 işleminin sonucu kaçtır?", "2", AnswerTypeInteger, false},
		{"large sum", "12345 + 67890 işleminin sonucu kaçtır?", "80235", AnswerTypeInteger, false},
		{"large product", "456 * 789 işleminin sonucu kaçtır?", "359784", AnswerTypeInteger, false},
		{"remainder question skipped", "47 ÷ 5 işleminde kalan kaçtır?", "2", AnswerTypeInteger, false},
		{"comparison", "Hangi kesir daha büyüktür: 3/4 mü 2/3 mü?", "3/4", AnswerTypeFraction, false},
		{"story problem", "Bir çiftçinin 345 elması var, 123 tanesini dağıtıyor. Kaç elma kalır?", "222", AnswerTypeInteger, false},
		{"place value", "5432 sayısında 5 rakamının basamak değeri nedir?", "5000", AnswerTypeInteger, false},
		{"clock time", "Saat 12:30'da başlayan film 90 dakika sürüyor. Film kaçta biter?", "14", AnswerTypeInteger, false},
		{"division by zero", "8 ÷ 0 = ?", "0", AnswerTypeInteger, false},
	}

	v := &MathCheckValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := questionWith(func(q *Question) {
				q.Text, q.Answer, q.AnswerType = tt.text, tt.answer, tt.answerType
			})
			err := v.Validate(q, GenerateInput{})
			if !tt.wantReject {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, "math-check", err.Validator)
			assert.True(t, err.Retryable)
		})
	}
}

func TestEvalFirstExpression(t *testing.T) {
	got, err := evalFirstExpression("Önce 3/4 + 5/8 hesaplayın, sonra 2 + 2.")
	require.NoError(t, err)
	assert.Equal(t, "1 3/8", got.Answer())

	_, err = evalFirstExpression("Üç elma ile beş armut")
	assert.ErrorIs(t, err, errNoExpression)
}
