package decimals

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
)

func TestDecimalString(t *testing.T) {
	tests := []struct {
		d    Decimal
		want string
	}{
		{Decimal{125, 1}, "12,5"},
		{Decimal{1205, 2}, "12,05"},
		{Decimal{7, 3}, "0,007"},
		{Decimal{9, 0}, "9"},
		{Decimal{-15, 1}, "-1,5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.String())
	}
}

func fracDigits(s string) int {
	_, frac, ok := strings.Cut(s, ",")
	if !ok {
		return 0
	}
	return len(frac)
}

func TestPrecisionRules(t *testing.T) {
	for _, d := range []problem.Difficulty{problem.Easy, problem.Medium, problem.Hard} {
		p := Places(d)
		for seed := uint64(1); seed <= 100; seed++ {
			src := random.New(seed)

			add, err := Draw(src, Settings{Operation: Addition, Difficulty: d, Format: problem.DisplayInline})
			require.NoError(t, err)
			assert.Equal(t, p, fracDigits(add.Result.String()))

			sub, err := Draw(src, Settings{Operation: Subtraction, Difficulty: d, Format: problem.DisplayInline})
			require.NoError(t, err)
			assert.Greater(t, sub.Result.Scaled, 0)

			mul, err := Draw(src, Settings{Operation: Multiplication, Difficulty: d, Format: problem.DisplayInline})
			require.NoError(t, err)
			assert.Equal(t, mul.A.Places+mul.B.Places, mul.Result.Places)
			assert.Equal(t, mul.A.Places-1, mul.B.Places)

			div, err := Draw(src, Settings{Operation: Division, Difficulty: d, Format: problem.DisplayInline})
			require.NoError(t, err)
			assert.Zero(t, div.B.Places)
			assert.Equal(t, div.A.Scaled, div.Result.Scaled*div.B.Scaled)
		}
	}
}

func TestGenerateInline(t *testing.T) {
	res := Generate(random.New(4), Settings{Operation: Addition, Difficulty: problem.Medium, Format: problem.DisplayInline})
	require.NoError(t, res.Err)
	assert.Regexp(t, `^\d+,\d{2} \+ \d+,\d{2} = \?$`, res.Problem.Question)
	assert.Equal(t, "Ondalık Sayılarla Toplama", res.Title)
}

func TestVerticalFormatRejectedForLongDivision(t *testing.T) {
	res := Generate(random.New(1), Settings{Operation: Division, Difficulty: problem.Easy, Format: problem.DisplayLongDivision})
	assert.Equal(t, problem.KindInvalidSettings, problem.KindOf(res.Err))
}
