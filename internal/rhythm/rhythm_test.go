package rhythm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
)

func TestFillBetweenShowsTwoBoxes(t *testing.T) {
	s := Settings{Step: 3, Direction: MixedDirection, Digits: 2, Layout: FillBetween, Boxes: 8}
	for seed := uint64(1); seed <= 300; seed++ {
		row, err := Draw(random.New(seed), s)
		require.NoError(t, err)
		pos := row.ShownPositions()
		require.Len(t, pos, 2)
		p1, p2 := pos[0], pos[1]
		diff := row.Values[p2] - row.Values[p1]
		if diff < 0 {
			diff = -diff
		}
		assert.Equal(t, (p2-p1)*s.Step, diff)
	}
}

func TestValuesStayInRange(t *testing.T) {
	for seed := uint64(1); seed <= 300; seed++ {
		src := random.New(seed)
		s := Settings{
			Step:          src.Int(1, 10),
			Direction:     MixedDirection,
			MultiplesOnly: src.Bool(),
			Digits:        src.Int(2, 3),
			Layout:        Continuation,
			Boxes:         src.Int(MinBoxes, MaxBoxes),
		}
		row, err := Draw(src, s)
		require.NoError(t, err)
		limit := 99
		if s.Digits == 3 {
			limit = 999
		}
		for i, v := range row.Values {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, limit)
			if s.MultiplesOnly {
				assert.Zero(t, v%s.Step)
			}
			if i > 0 {
				assert.Equal(t, s.Step, abs(v-row.Values[i-1]))
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestStartRange(t *testing.T) {
	lo, hi, ok := StartRange(Settings{Step: 5, Digits: 2, Boxes: 6, MultiplesOnly: true}, Forward)
	require.True(t, ok)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 70, hi)

	lo, hi, ok = StartRange(Settings{Step: 5, Digits: 2, Boxes: 6, MultiplesOnly: true}, Backward)
	require.True(t, ok)
	assert.Equal(t, 25, lo)
	assert.Equal(t, 95, hi)
}

func TestNoValidRange(t *testing.T) {
	tests := map[string]Settings{
		"too many boxes": {Step: 5, Direction: Forward, Digits: 1, Layout: Continuation, Boxes: 6},
		"huge step":      {Step: 1 << 62, Direction: Forward, Digits: 4, Layout: Continuation, Boxes: 4},
		"huge step back": {Step: 1 << 62, Direction: Backward, Digits: 4, Layout: Continuation, Boxes: 4},
		"step over span": {Step: 3334, Direction: MixedDirection, Digits: 4, Layout: FillAround, Boxes: 4},
	}
	for name, s := range tests {
		t.Run(name, func(t *testing.T) {
			res := Generate(random.New(1), s)
			assert.Equal(t, problem.KindInvalidSettings, problem.KindOf(res.Err))
		})
	}
}

func TestLargestStepFits(t *testing.T) {
	s := Settings{Step: 3333, Direction: Forward, Digits: 4, Layout: Continuation, Boxes: 4}
	lo, hi, ok := StartRange(s, Forward)
	require.True(t, ok)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)
}

func TestContinuationAndAnchor(t *testing.T) {
	cont, err := Draw(random.New(2), Settings{Step: 2, Direction: Forward, Digits: 2, Layout: Continuation, Boxes: 5})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, cont.ShownPositions())

	around, err := Draw(random.New(2), Settings{Step: 2, Direction: Backward, Digits: 2, Layout: FillAround, Boxes: 5})
	require.NoError(t, err)
	pos := around.ShownPositions()
	require.Len(t, pos, 1)
	assert.Greater(t, pos[0], 0)
	assert.Less(t, pos[0], 4)
}
