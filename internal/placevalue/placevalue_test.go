package placevalue

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/worksheetz/internal/markup"
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
)

func TestRound(t *testing.T) {
	tests := []struct {
		n, div, want int
	}{
		{125, 10, 130},
		{124, 10, 120},
		{150, 100, 200},
		{149, 100, 100},
		{4500, 1000, 5000},
		{4499, 1000, 4000},
		{5, 10, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.n, tt.div), "Round(%d, %d)", tt.n, tt.div)
	}
}

func TestTerms(t *testing.T) {
	assert.Equal(t, []int{3000, 40, 5}, Terms(3045))
	assert.Equal(t, []int{7}, Terms(7))
}

func TestDistinctDigits(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		n := distinctDigits(random.New(seed), 5)
		s := strconv.Itoa(n)
		require.Len(t, s, 5)
		seen := map[rune]bool{}
		for _, r := range s {
			assert.False(t, seen[r], "%d repeats digit %c", n, r)
			seen[r] = true
		}
	}
}

func TestDigitValueAnswer(t *testing.T) {
	re := regexp.MustCompile(`^(\d+) sayısındaki (\d) rakamının`)
	for seed := uint64(1); seed <= 100; seed++ {
		res := Generate(random.New(seed), Settings{Type: DigitValue, Digits: 4})
		require.NoError(t, res.Err)
		m := re.FindStringSubmatch(markup.PlainText(res.Problem.Question))
		require.NotNil(t, m)
		pos := len(m[1]) - 1 - strings.Index(m[1], m[2])
		want, _ := strconv.Atoi(m[2])
		assert.Equal(t, strconv.Itoa(want*pow10[pos]), res.Problem.Answer)
	}
}

func TestRoundingRandomMagnitudeIsEligible(t *testing.T) {
	for seed := uint64(1); seed <= 100; seed++ {
		res := Generate(random.New(seed), Settings{Type: Rounding, Digits: 2, RoundTo: AnyMagnitude})
		require.NoError(t, res.Err)
		assert.Contains(t, res.Problem.Question, "onluğa")
	}
}

func TestRoundingRejectsTooLargeMagnitude(t *testing.T) {
	res := Generate(random.New(1), Settings{Type: Rounding, Digits: 2, RoundTo: Thousands})
	assert.Equal(t, problem.KindInvalidSettings, problem.KindOf(res.Err))
}

func TestComposeFromExpandedSumsTerms(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		res := Generate(random.New(seed), Settings{Type: ComposeFromExpanded, Digits: 5, Shuffled: true})
		require.NoError(t, res.Err)
		expr := strings.TrimSuffix(markup.PlainText(res.Problem.Question), " = ?")
		sum := 0
		for _, term := range strings.Split(expr, " + ") {
			v, err := strconv.Atoi(term)
			require.NoError(t, err)
			sum += v
		}
		assert.Equal(t, res.Problem.Answer, strconv.Itoa(sum))
	}
}

func TestClueNumber(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		n, clues := clueNumber(random.New(seed), 5)
		assert.Len(t, strconv.Itoa(n), 5)
		assert.GreaterOrEqual(t, len(clues), 1)
		assert.LessOrEqual(t, len(clues), 3)
		assert.Len(t, Terms(n), len(clues))
	}
}

func TestComposeFromWords(t *testing.T) {
	res := Generate(random.New(9), Settings{Type: ComposeFromWords, Digits: 3})
	require.NoError(t, res.Err)
	assert.Contains(t, res.Problem.Question, "yüz")
}
