package clocktime

import (
	"regexp"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/worksheetz/internal/markup"
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
)

func TestTimeArithmetic(t *testing.T) {
	assert.Equal(t, "00:15", At(23, 45).Add(30).String())
	assert.Equal(t, "23:50", At(0, 10).Add(-20).String())
	assert.Equal(t, "12:00", At(0, 0).ClockString())
	assert.Equal(t, "3:05", At(15, 5).ClockString())
}

func TestReadClockGranularity(t *testing.T) {
	re := regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	for seed := uint64(1); seed <= 100; seed++ {
		res := Generate(random.New(seed), Settings{Type: ReadClock, Difficulty: problem.Easy, ShowNumbers: true})
		require.NoError(t, res.Err)
		m := re.FindStringSubmatch(res.Problem.Answer)
		require.NotNil(t, m, res.Problem.Answer)
		minute, _ := strconv.Atoi(m[2])
		assert.Zero(t, minute%30)
		assert.Contains(t, res.Problem.Question, "hour-hand")
	}
}

func TestDrawClockHidesHands(t *testing.T) {
	res := Generate(random.New(7), Settings{Type: DrawClock, Difficulty: problem.Medium})
	require.NoError(t, res.Err)
	assert.NotContains(t, res.Problem.Question, "hour-hand")
	assert.Contains(t, res.Problem.Answer, "hour-hand")
}

func TestEndAndStartTimesUseNiceDurations(t *testing.T) {
	re := regexp.MustCompile(`(\d{2}):(\d{2})`)
	for seed := uint64(1); seed <= 100; seed++ {
		res := Generate(random.New(seed), Settings{Type: EndTime, Difficulty: problem.Medium})
		require.NoError(t, res.Err)
		q := markup.PlainText(res.Problem.Question)
		m := re.FindStringSubmatch(q)
		require.NotNil(t, m)
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])

		am := re.FindStringSubmatch(res.Problem.Answer)
		require.NotNil(t, am)
		eh, _ := strconv.Atoi(am[1])
		em, _ := strconv.Atoi(am[2])
		d := (eh*60 + em) - (h*60 + mm)
		assert.True(t, slices.Contains(NiceDurations, d), "duration %d", d)
	}
}

func TestCalendar(t *testing.T) {
	for seed := uint64(1); seed <= 100; seed++ {
		res := Generate(random.New(seed), Settings{Type: Calendar, Difficulty: problem.Hard})
		require.NoError(t, res.Err)
		assert.Contains(t, Weekdays, res.Problem.Answer)
	}
}

func TestUnitConversion(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		res := Generate(random.New(seed), Settings{Type: UnitConversion, Difficulty: problem.Hard})
		require.NoError(t, res.Err)
		assert.NotEmpty(t, res.Problem.Answer)
	}
}
