// Package decimals generates four-operation problems over decimal numbers.
// Values are kept as integers scaled by a power of ten so answers are exact.
package decimals

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/worksheetz/internal/markup"
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
)

type Operation string

const (
	Addition       Operation = "addition"
	Subtraction    Operation = "subtraction"
	Multiplication Operation = "multiplication"
	Division       Operation = "division"
	Mixed          Operation = "mixed"
)

type Settings struct {
	Operation   Operation          `json:"operation"`
	Difficulty  problem.Difficulty `json:"difficulty"`
	Format      problem.Display    `json:"format"`
	MaxAttempts int                `json:"maxAttempts,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{Operation: Addition, Difficulty: problem.Easy, Format: problem.DisplayInline}
}

func (s Settings) Validate() error {
	switch s.Operation {
	case Addition, Subtraction, Multiplication, Division, Mixed:
	default:
		return problem.InvalidSettings("unknown operation %q", s.Operation)
	}
	if !s.Difficulty.Valid() {
		return problem.InvalidSettings("unknown difficulty %q", s.Difficulty)
	}
	if s.Format != problem.DisplayInline && s.Format != problem.DisplayVertical {
		return problem.InvalidSettings("decimal problems support inline and vertical formats, got %q", s.Format)
	}
	return nil
}

// Decimal is Scaled / 10^Places.
type Decimal struct {
	Scaled int
	Places int
}

var pow10 = [...]int{1, 10, 100, 1000, 10000, 100000, 1000000}

// String writes d with a decimal comma and exactly Places fractional digits.
func (d Decimal) String() string {
	if d.Places == 0 {
		return strconv.Itoa(d.Scaled)
	}
	sign := ""
	v := d.Scaled
	if v < 0 {
		sign, v = "-", -v
	}
	p := pow10[d.Places]
	return fmt.Sprintf("%s%d,%0*d", sign, v/p, d.Places, v%p)
}

// Instance is a drawn decimal problem.
type Instance struct {
	Op     Operation
	A, B   Decimal
	Result Decimal
}

// Places returns the operand precision for a difficulty tier.
func Places(d problem.Difficulty) int {
	switch d {
	case problem.Medium:
		return 2
	case problem.Hard:
		return 3
	}
	return 1
}

func wholeLimit(d problem.Difficulty) int {
	switch d {
	case problem.Medium:
		return 100
	case problem.Hard:
		return 1000
	}
	return 20
}

// value draws a decimal at places with a nonzero last digit.
func value(src *random.Source, places, whole int) Decimal {
	v := src.Int(1, whole*pow10[places]-1)
	if places > 0 && v%10 == 0 {
		v++
	}
	return Decimal{Scaled: v, Places: places}
}

// Draw picks operands for s. Multiplication keeps one operand one place
// shorter and answers at the summed precision; division builds an exact
// quotient first and multiplies it by a whole divisor.
func Draw(src *random.Source, s Settings) (Instance, error) {
	if err := s.Validate(); err != nil {
		return Instance{}, err
	}
	op := s.Operation
	if op == Mixed {
		op = random.Pick(src, []Operation{Addition, Subtraction, Multiplication, Division})
	}
	p := Places(s.Difficulty)
	limit := wholeLimit(s.Difficulty)

	switch op {
	case Addition:
		a, b := value(src, p, limit), value(src, p, limit)
		return Instance{Op: op, A: a, B: b, Result: Decimal{a.Scaled + b.Scaled, p}}, nil

	case Subtraction:
		var err error
		inst := problem.Retry(s.MaxAttempts, func(int) (Instance, bool) {
			a, b := value(src, p, limit), value(src, p, limit)
			if a.Scaled == b.Scaled {
				return Instance{}, false
			}
			if a.Scaled < b.Scaled {
				a, b = b, a
			}
			return Instance{Op: op, A: a, B: b, Result: Decimal{a.Scaled - b.Scaled, p}}, true
		}, func(e error) Instance { err = e; return Instance{} })
		return inst, err

	case Multiplication:
		a := value(src, p, 20)
		pb := p - 1
		var b Decimal
		if pb == 0 {
			b = Decimal{Scaled: src.Int(2, 9)}
		} else {
			b = value(src, pb, 10)
		}
		return Instance{Op: op, A: a, B: b, Result: Decimal{a.Scaled * b.Scaled, p + pb}}, nil

	default:
		q := value(src, p, limit/2)
		d := src.Int(2, 9)
		if s.Difficulty != problem.Easy {
			d = src.Int(2, 12)
		}
		return Instance{
			Op: Division, A: Decimal{q.Scaled * d, p}, B: Decimal{Scaled: d}, Result: q,
		}, nil
	}
}

var symbols = map[Operation]string{Addition: "+", Subtraction: "-", Multiplication: "×", Division: "÷"}

var titles = map[Operation]string{
	Addition:       "Ondalık Sayılarla Toplama",
	Subtraction:    "Ondalık Sayılarla Çıkarma",
	Multiplication: "Ondalık Sayılarla Çarpma",
	Division:       "Ondalık Sayılarla Bölme",
	Mixed:          "Ondalık Sayılarla İşlemler",
}

// Render lays the instance out inline or as a column. Column layout pads
// both operands to the same number of fractional digits so commas align.
func Render(inst Instance, format problem.Display) problem.Problem {
	p := problem.Problem{Answer: inst.Result.String(), Category: problem.CategoryDecimals, Display: problem.DisplayInline}
	a, b := inst.A.String(), inst.B.String()
	if format == problem.DisplayVertical && inst.Op != Division {
		a, b = alignCommas(inst.A, inst.B)
		p.Question = markup.Vertical(symbols[inst.Op], a, b)
		p.Display = problem.DisplayVertical
		return p
	}
	p.Question = markup.Text(fmt.Sprintf("%s %s %s = ?", a, symbols[inst.Op], b))
	return p
}

func alignCommas(a, b Decimal) (string, string) {
	sa, sb := a.String(), b.String()
	if a.Places == b.Places {
		return sa, sb
	}
	pad := func(s string, have, want int) string {
		if have == 0 {
			s += " "
		}
		return s + strings.Repeat(" ", want-have)
	}
	if a.Places < b.Places {
		return pad(sa, a.Places, b.Places), sb
	}
	return sa, pad(sb, b.Places, a.Places)
}

func Generate(src *random.Source, s Settings) problem.Result {
	title := titles[s.Operation]
	if title == "" {
		title = titles[Mixed]
	}
	inst, err := Draw(src, s)
	if err != nil {
		return problem.Fail(title, problem.CategoryDecimals, err)
	}
	return problem.OK(Render(inst, s.Format), title)
}
