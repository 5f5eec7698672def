// Package rhythm generates rhythmic counting rows: sequences with a fixed
// step where some boxes are filled in and the rest are left for the student.
package rhythm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/worksheetz/internal/markup"
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
)

type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
	// MixedDirection picks forward or backward per row.
	MixedDirection Direction = "mixed"
)

// Layout selects which boxes of a row are filled in.
type Layout string

const (
	// Continuation shows the first two values.
	Continuation Layout = "continuation"
	// FillAround shows one anchor value inside the row.
	FillAround Layout = "fill-around"
	// FillBetween shows exactly two values anywhere in the row.
	FillBetween Layout = "fill-between"
)

const (
	MinBoxes  = 4
	MaxBoxes  = 10
	MaxDigits = 4
)

type Settings struct {
	Step      int       `json:"step"`
	Direction Direction `json:"direction"`
	// MultiplesOnly keeps every value a multiple of Step.
	MultiplesOnly bool   `json:"multiplesOnly"`
	Digits        int    `json:"digits"`
	Layout        Layout `json:"layout"`
	Boxes         int    `json:"boxes"`
}

func DefaultSettings() Settings {
	return Settings{Step: 5, Direction: Forward, MultiplesOnly: true, Digits: 2, Layout: Continuation, Boxes: 6}
}

func (s Settings) Validate() error {
	if s.Step < 1 {
		return problem.InvalidSettings("step must be positive, got %d", s.Step)
	}
	switch s.Direction {
	case Forward, Backward, MixedDirection:
	default:
		return problem.InvalidSettings("unknown direction %q", s.Direction)
	}
	switch s.Layout {
	case Continuation, FillAround, FillBetween:
	default:
		return problem.InvalidSettings("unknown layout %q", s.Layout)
	}
	if s.Digits < 1 || s.Digits > MaxDigits {
		return problem.InvalidSettings("digits must be between 1 and %d, got %d", MaxDigits, s.Digits)
	}
	if s.Boxes < MinBoxes || s.Boxes > MaxBoxes {
		return problem.InvalidSettings("boxes must be between %d and %d, got %d", MinBoxes, MaxBoxes, s.Boxes)
	}
	return nil
}

// Row is one counting row. Values are in reading order.
type Row struct {
	Step      int
	Direction Direction
	Values    []int
	Shown     []bool
}

// ShownPositions returns the indexes of the filled-in boxes.
func (r Row) ShownPositions() []int {
	var out []int
	for i, ok := range r.Shown {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// StartRange returns the inclusive range of first values that keep every
// value of a row in [0, 10^digits - 1]. ok is false when no start fits.
func StartRange(s Settings, dir Direction) (lo, hi int, ok bool) {
	limit := 1
	for range s.Digits {
		limit *= 10
	}
	limit--
	if s.Boxes < 2 || s.Step > limit/(s.Boxes-1) {
		return 0, -1, false
	}
	span := (s.Boxes - 1) * s.Step

	if dir == Forward {
		lo, hi = 0, limit-span
	} else {
		lo, hi = span, limit
	}
	if s.MultiplesOnly {
		lo = (lo + s.Step - 1) / s.Step * s.Step
		hi = hi / s.Step * s.Step
	}
	return lo, hi, lo <= hi && hi >= 0
}

// Draw picks a direction and start for one row. When the chosen direction
// has no valid start, the other direction is tried before giving up.
func Draw(src *random.Source, s Settings) (Row, error) {
	if err := s.Validate(); err != nil {
		return Row{}, err
	}
	dir := s.Direction
	if dir == MixedDirection {
		dir = random.Pick(src, []Direction{Forward, Backward})
	}

	lo, hi, ok := StartRange(s, dir)
	if !ok {
		dir = opposite(dir)
		if lo, hi, ok = StartRange(s, dir); !ok {
			return Row{}, problem.InvalidSettings("%d boxes with step %d do not fit in %d digits", s.Boxes, s.Step, s.Digits)
		}
	}

	start := src.Int(lo, hi)
	if s.MultiplesOnly {
		start = src.Int(lo/s.Step, hi/s.Step) * s.Step
	}
	delta := s.Step
	if dir == Backward {
		delta = -s.Step
	}

	row := Row{Step: s.Step, Direction: dir, Values: make([]int, s.Boxes), Shown: make([]bool, s.Boxes)}
	for i := range row.Values {
		row.Values[i] = start + i*delta
	}

	switch s.Layout {
	case Continuation:
		row.Shown[0], row.Shown[1] = true, true
	case FillAround:
		row.Shown[src.Int(1, s.Boxes-2)] = true
	case FillBetween:
		for _, p := range random.Sample(src, seq(s.Boxes), 2) {
			row.Shown[p] = true
		}
	}
	return row, nil
}

func opposite(d Direction) Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Render draws the row as boxes with the shown values filled in.
func Render(r Row) problem.Problem {
	boxes := make([]string, len(r.Values))
	answers := make([]string, len(r.Values))
	for i, v := range r.Values {
		answers[i] = strconv.Itoa(v)
		if r.Shown[i] {
			boxes[i] = markup.FilledBox(answers[i])
		} else {
			boxes[i] = markup.Box()
		}
	}
	way := "İleriye"
	if r.Direction == Backward {
		way = "Geriye"
	}
	instruction := fmt.Sprintf("%s doğru %d adımla sayarak boş kutuları doldurunuz.", way, r.Step)
	return problem.Problem{
		Question: markup.Text(instruction) + markup.Row(boxes...),
		Answer:   strings.Join(answers, ", "),
		Category: problem.CategoryRhythm,
		Display:  problem.DisplayInline,
	}
}

func Generate(src *random.Source, s Settings) problem.Result {
	const title = "Ritmik Sayma"
	row, err := Draw(src, s)
	if err != nil {
		return problem.Fail(title, problem.CategoryRhythm, err)
	}
	return problem.OK(Render(row), title)
}
