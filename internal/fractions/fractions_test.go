package fractions

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

var answerRe = regexp.MustCompile(`^(?:(\d+) )?(\d+)/(\d+)$`)

// assertReduced fails when a fractional answer is not in lowest terms.
func assertReduced(t *testing.T, answer string) {
	t.Helper()
	m := answerRe.FindStringSubmatch(answer)
	if m == nil {
		_, err := strconv.Atoi(answer)
		assert.NoError(t, err, "answer %q is neither a fraction nor an integer", answer)
		return
	}
	num, _ := strconv.Atoi(m[2])
	den, _ := strconv.Atoi(m[3])
	assert.True(t, Fraction{Num: num, Den: den}.IsReduced(), "answer %q is not reduced", answer)
	assert.Less(t, num, den, "answer %q has an improper remainder", answer)
}

func TestFractionArithmetic(t *testing.T) {
	half, third := New(1, 2), New(1, 3)
	assert.Equal(t, New(5, 6), half.Add(third))
	assert.Equal(t, New(1, 6), half.Sub(third))
	assert.Equal(t, New(1, 6), half.Mul(third))
	assert.Equal(t, New(3, 2), half.Div(third))
	assert.Equal(t, Fraction{Num: -1, Den: 2}, New(2, -4))
	assert.Equal(t, 1, half.Cmp(third))
}

func TestAnswerFormatting(t *testing.T) {
	tests := []struct {
		f    Fraction
		want string
	}{
		{Fraction{2, 4}, "1/2"},
		{Fraction{8, 4}, "2"},
		{Fraction{7, 3}, "2 1/3"},
		{Fraction{0, 5}, "0"},
		{Fraction{10, 4}, "2 1/2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.f.Answer(), "%v", tt.f)
	}
}

func TestAnswersAreAlwaysReduced(t *testing.T) {
	for _, d := range []problem.Difficulty{problem.Easy, problem.Medium, problem.Hard} {
		for _, op := range []Operation{Addition, Subtraction, Multiplication, Division, Mixed} {
			s := Settings{Type: FourOperations, Operation: op, Difficulty: d}
			for seed := uint64(1); seed <= 100; seed++ {
				res := Generate(random.New(seed), s)
				require.NoError(t, res.Err)
				assertReduced(t, res.Problem.Answer)
			}
		}
	}
}

func TestEasyAdditionSharesDenominator(t *testing.T) {
	s := Settings{Type: FourOperations, Operation: Addition, Difficulty: problem.Easy}
	for seed := uint64(1); seed <= 200; seed++ {
		src := random.New(seed)
		inst, err := DrawOperation(src, s)
		require.NoError(t, err)
		assert.Equal(t, inst.A.Value.Den, inst.B.Value.Den)
		assert.Equal(t, inst.A.Value.Add(inst.B.Value), inst.Result)
		assertReduced(t, RenderOperation(inst).Answer)
	}
}

func TestMediumUsesDistinctDenominators(t *testing.T) {
	s := Settings{Type: FourOperations, Operation: Multiplication, Difficulty: problem.Medium}
	for seed := uint64(1); seed <= 200; seed++ {
		inst, err := DrawOperation(random.New(seed), s)
		require.NoError(t, err)
		assert.NotEqual(t, inst.A.Value.Den, inst.B.Value.Den)
	}
}

func TestSubtractionKeepsSwappedOrder(t *testing.T) {
	s := Settings{Type: FourOperations, Operation: Subtraction, Difficulty: problem.Medium}
	for seed := uint64(1); seed <= 200; seed++ {
		inst, err := DrawOperation(random.New(seed), s)
		require.NoError(t, err)
		assert.Equal(t, 1, inst.A.Value.Cmp(inst.B.Value))
		assert.Greater(t, inst.Result.Num, 0)

		text := markup.PlainText(RenderOperation(inst).Question)
		want := inst.A.Value.String() + " - " + inst.B.Value.String()
		assert.True(t, strings.HasPrefix(text, want), "question %q should start with %q", text, want)
	}
}

func TestHardOperandsAreImproper(t *testing.T) {
	for seed := uint64(1); seed <= 100; seed++ {
		a, b := drawOperands(random.New(seed), problem.Hard)
		for _, o := range []Operand{a, b} {
			assert.Greater(t, o.Value.Num, o.Value.Den)
			assert.NotZero(t, o.Value.Num%o.Value.Den)
		}
	}
}

func TestRecognitionAnswerIncludesWords(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		res := Generate(random.New(seed), Settings{Type: Recognition, Difficulty: problem.Medium})
		require.NoError(t, res.Err)
		assert.Contains(t, res.Problem.Question, "<svg")
		assert.Contains(t, res.Problem.Answer, "(")
	}
	p := recognition(random.New(1), problem.Easy)
	assert.Regexp(t, `^\d/\d \(\S+ \S+\)$`, p.Answer)
}

func TestComparisonAnswer(t *testing.T) {
	for seed := uint64(1); seed <= 100; seed++ {
		res := Generate(random.New(seed), Settings{Type: Comparison, Difficulty: problem.Hard})
		require.NoError(t, res.Err)
		assert.Contains(t, []string{"<", ">", "="}, res.Problem.Answer)
	}
}

func TestEquivalenceHidesOneTerm(t *testing.T) {
	for seed := uint64(1); seed <= 100; seed++ {
		res := Generate(random.New(seed), Settings{Type: Equivalence, Difficulty: problem.Easy})
		require.NoError(t, res.Err)
		assert.Contains(t, markup.PlainText(res.Problem.Question), "[ ]")
		_, err := strconv.Atoi(res.Problem.Answer)
		assert.NoError(t, err)
	}
}

func TestOfSetIsWholeNumber(t *testing.T) {
	re := regexp.MustCompile(`^Toplam (\d+) \S+ (\d+)/(\d+) kadarı`)
	for seed := uint64(1); seed <= 100; seed++ {
		res := Generate(random.New(seed), Settings{Type: OfSet, Difficulty: problem.Medium})
		require.NoError(t, res.Err)
		m := re.FindStringSubmatch(markup.PlainText(res.Problem.Question))
		require.NotNil(t, m, res.Problem.Question)
		total, _ := strconv.Atoi(m[1])
		num, _ := strconv.Atoi(m[2])
		den, _ := strconv.Atoi(m[3])
		require.Zero(t, total%den)
		assert.True(t, strings.HasPrefix(res.Problem.Answer, strconv.Itoa(total/den*num)+" "))
	}
}

func TestInvalidType(t *testing.T) {
	res := Generate(random.New(1), Settings{Type: "pizza", Difficulty: problem.Easy})
	assert.Equal(t, problem.KindInvalidSettings, problem.KindOf(res.Err))
}
