// Package measurement generates conversions between adjacent metric units.
package measurement

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/worksheetz/internal/markup"
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
)

// Quantity selects the unit family.
type Quantity string

const (
	Length Quantity = "length"
	Mass   Quantity = "mass"
	Volume Quantity = "volume"
	// AnyQuantity picks a family per problem.
	AnyQuantity Quantity = "mixed"
)

// Direction selects whether values move to the smaller or the larger unit.
type Direction string

const (
	ToSmaller       Direction = "to-smaller"
	ToLarger        Direction = "to-larger"
	RandomDirection Direction = "random"
)

// Representation is how a value in the larger unit is written.
type Representation string

const (
	AsDecimal  Representation = "decimal"
	AsFraction Representation = "fraction"
	AsMixed    Representation = "mixed-units"
)

// Step is a pair of adjacent units.
type Step struct {
	Big, Small string
	Factor     int
}

var chains = map[Quantity][]Step{
	Length: {{"km", "m", 1000}, {"m", "cm", 100}, {"cm", "mm", 10}},
	Mass:   {{"t", "kg", 1000}, {"kg", "g", 1000}, {"g", "mg", 1000}},
	Volume: {{"L", "mL", 1000}},
}

var titles = map[Quantity]string{
	Length:      "Uzunluk Ölçüleri",
	Mass:        "Kütle Ölçüleri",
	Volume:      "Sıvı Ölçüleri",
	AnyQuantity: "Ölçü Birimleri",
}

type Settings struct {
	Quantity   Quantity           `json:"quantity"`
	Difficulty problem.Difficulty `json:"difficulty"`
	Direction  Direction          `json:"direction"`
}

func DefaultSettings() Settings {
	return Settings{Quantity: Length, Difficulty: problem.Easy, Direction: RandomDirection}
}

func (s Settings) Validate() error {
	if _, ok := titles[s.Quantity]; !ok {
		return problem.InvalidSettings("unknown quantity %q", s.Quantity)
	}
	if !s.Difficulty.Valid() {
		return problem.InvalidSettings("unknown difficulty %q", s.Difficulty)
	}
	switch s.Direction {
	case ToSmaller, ToLarger, RandomDirection:
	default:
		return problem.InvalidSettings("unknown direction %q", s.Direction)
	}
	return nil
}

// Instance is a conversion of Whole*Factor + Rem small units.
type Instance struct {
	Step      Step
	ToSmaller bool
	Whole     int
	Rem       int
	Rep       Representation
}

// Total is the amount expressed in the smaller unit.
func (in Instance) Total() int {
	return in.Whole*in.Step.Factor + in.Rem
}

// ToSmallerUnit converts whole larger units into smaller units.
func ToSmallerUnit(v, factor int) int {
	return v * factor
}

// ToLargerUnit converts smaller units into whole larger units and a remainder.
func ToLargerUnit(v, factor int) (int, int) {
	return v / factor, v % factor
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ValidRepresentations lists the forms in which the larger-unit value can
// be written exactly and legibly.
func ValidRepresentations(whole, rem, factor int) []Representation {
	reps := []Representation{AsDecimal}
	if rem > 0 && factor/gcd(rem, factor) <= 10 {
		reps = append(reps, AsFraction)
	}
	if whole >= 1 && rem > 0 {
		reps = append(reps, AsMixed)
	}
	return reps
}

// Draw picks a unit pair and an amount shaped by difficulty: easy amounts are
// whole multiples, medium amounts have one decimal place in the larger unit
// and hard amounts carry an arbitrary remainder.
func Draw(src *random.Source, s Settings) (Instance, error) {
	if err := s.Validate(); err != nil {
		return Instance{}, err
	}
	q := s.Quantity
	if q == AnyQuantity {
		q = random.Pick(src, []Quantity{Length, Mass, Volume})
	}
	step := random.Pick(src, chains[q])
	toSmaller := s.Direction == ToSmaller || (s.Direction == RandomDirection && src.Bool())

	inst := Instance{Step: step, ToSmaller: toSmaller, Rep: AsDecimal}
	f := step.Factor
	switch s.Difficulty {
	case problem.Easy:
		inst.Whole = src.Int(1, 20)
	case problem.Medium:
		inst.Whole = src.Int(0, 20)
		inst.Rem = src.Int(1, 9) * f / 10
	default:
		inst.Whole = src.Int(0, 9)
		if src.Bool() {
			den := random.Pick(src, []int{2, 4, 5, 10})
			inst.Rem = src.Int(1, den-1) * f / den
		}
		if inst.Rem == 0 {
			inst.Rem = src.Int(1, 99) * f / 100
			if inst.Rem == 0 {
				inst.Rem = src.Int(1, f-1)
			}
		}
		inst.Rep = random.Pick(src, ValidRepresentations(inst.Whole, inst.Rem, f))
	}
	return inst, nil
}

// decimalText writes total/factor with a decimal comma and no trailing zeros.
func decimalText(total, factor int) string {
	whole, rem := ToLargerUnit(total, factor)
	if rem == 0 {
		return strconv.Itoa(whole)
	}
	width := len(strconv.Itoa(factor)) - 1
	frac := strings.TrimRight(fmt.Sprintf("%0*d", width, rem), "0")
	return strconv.Itoa(whole) + "," + frac
}

// larger writes the amount in the larger unit as text and as markup.
func (in Instance) larger() (text, html string) {
	s := in.Step
	switch in.Rep {
	case AsFraction:
		g := gcd(in.Rem, s.Factor)
		n, d := in.Rem/g, s.Factor/g
		if in.Whole == 0 {
			return fmt.Sprintf("%d/%d %s", n, d, s.Big),
				markup.Fraction(strconv.Itoa(n), strconv.Itoa(d)) + " " + s.Big
		}
		return fmt.Sprintf("%d %d/%d %s", in.Whole, n, d, s.Big),
			markup.MixedFraction(strconv.Itoa(in.Whole), strconv.Itoa(n), strconv.Itoa(d)) + " " + s.Big
	case AsMixed:
		t := fmt.Sprintf("%d %s %d %s", in.Whole, s.Big, in.Rem, s.Small)
		return t, markup.Text(t)
	}
	t := decimalText(in.Total(), s.Factor) + " " + s.Big
	return t, markup.Text(t)
}

var repHints = map[Representation]string{
	AsFraction: "Cevabı kesir olarak yazınız.",
	AsMixed:    "Cevabı %s ve %s cinsinden yazınız.",
	AsDecimal:  "Cevabı ondalık sayı olarak yazınız.",
}

// Render writes the conversion question. Hard conversions into the larger
// unit name the representation the answer must use.
func Render(in Instance, d problem.Difficulty) problem.Problem {
	text, html := in.larger()
	small := fmt.Sprintf("%d %s", in.Total(), in.Step.Small)
	p := problem.Problem{Category: problem.CategoryMeasurement, Display: problem.DisplayInline}

	if in.ToSmaller {
		p.Question = html + markup.Text(" = ? "+in.Step.Small)
		p.Answer = small
		return p
	}

	p.Question = markup.Text(small + " = ? ")
	if in.Rep == AsMixed {
		p.Question += markup.Text(in.Step.Big + " ? " + in.Step.Small)
	} else {
		p.Question += markup.Text(in.Step.Big)
	}
	if d == problem.Hard {
		hint := repHints[in.Rep]
		if in.Rep == AsMixed {
			hint = fmt.Sprintf(hint, in.Step.Big, in.Step.Small)
		}
		p.Question += "<br>" + markup.Text(hint)
	}
	p.Answer = text
	return p
}

func Generate(src *random.Source, s Settings) problem.Result {
	title := titles[s.Quantity]
	if title == "" {
		title = titles[AnyQuantity]
	}
	inst, err := Draw(src, s)
	if err != nil {
		return problem.Fail(title, problem.CategoryMeasurement, err)
	}
	return problem.OK(Render(inst, s.Difficulty), title)
}
