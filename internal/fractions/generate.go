package fractions

import (
	"fmt"
	"strconv"

	"github.com/abhisek/worksheetz/internal/markup"
	"github.com/abhisek/worksheetz/internal/numwords"
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
	"github.com/abhisek/worksheetz/internal/svg"
)

var opTitles = map[Operation]string{
	Addition:       "Kesirlerle Toplama",
	Subtraction:    "Kesirlerle Çıkarma",
	Multiplication: "Kesirlerle Çarpma",
	Division:       "Kesirlerle Bölme",
	Mixed:          "Kesirlerle Dört İşlem",
}

var typeTitles = map[Type]string{
	Recognition: "Kesirleri Tanıma",
	Comparison:  "Kesirleri Karşılaştırma",
	Equivalence: "Denk Kesirler",
	OfSet:       "Bir Çokluğun Kesri",
}

var symbols = map[Operation]string{
	Addition:       "+",
	Subtraction:    "-",
	Multiplication: "×",
	Division:       "÷",
}

// Operand is a drawn fraction together with how the question shows it.
type Operand struct {
	Value     Fraction
	ShowMixed bool
}

func (o Operand) markup() string {
	if o.ShowMixed {
		whole, rem := o.Value.Mixed()
		return markup.MixedFraction(strconv.Itoa(whole), strconv.Itoa(rem.Num), strconv.Itoa(rem.Den))
	}
	return markup.Fraction(strconv.Itoa(o.Value.Num), strconv.Itoa(o.Value.Den))
}

// OperationInstance is the four-operations problem model. Operands are shown in the order stored, which for
// subtraction is already swapped so the result is not negative.
type OperationInstance struct {
	Op     Operation
	A, B   Operand
	Result Fraction
}

// Generate produces one problem of s.Type.
func Generate(src *random.Source, s Settings) problem.Result {
	title := typeTitles[s.Type]
	if s.Type == FourOperations {
		title = opTitles[s.Operation]
	}
	if title == "" {
		title = "Kesirler"
	}
	if err := s.Validate(); err != nil {
		return problem.Fail(title, problem.CategoryFractions, err)
	}

	var (
		p   problem.Problem
		err error
	)
	switch s.Type {
	case FourOperations:
		var inst OperationInstance
		if inst, err = DrawOperation(src, s); err == nil {
			p = RenderOperation(inst)
		}
	case Recognition:
		p = recognition(src, s.Difficulty)
	case Comparison:
		p = comparison(src, s.Difficulty)
	case Equivalence:
		p = equivalence(src, s.Difficulty)
	case OfSet:
		p = ofSet(src, s.Difficulty)
	}
	if err != nil {
		return problem.Fail(title, problem.CategoryFractions, err)
	}
	p.Category = problem.CategoryFractions
	p.Display = problem.DisplayInline
	return problem.OK(p, title)
}

// proper draws n/den with 1 <= n < den.
func proper(src *random.Source, den int) Fraction {
	return Fraction{Num: src.Int(1, den-1), Den: den}
}

// drawOperands follows the difficulty tiers: easy shares one denominator,
// medium uses two distinct denominators, hard uses mixed numbers or
// improper fractions.
func drawOperands(src *random.Source, d problem.Difficulty) (Operand, Operand) {
	switch d {
	case problem.Easy:
		den := src.Int(2, 10)
		return Operand{Value: proper(src, den)}, Operand{Value: proper(src, den)}
	case problem.Medium:
		d1 := src.Int(2, 10)
		d2 := src.Int(2, 9)
		if d2 >= d1 {
			d2++
		}
		return Operand{Value: proper(src, d1)}, Operand{Value: proper(src, d2)}
	default:
		mixed := src.Bool()
		draw := func() Operand {
			den := src.Int(2, 9)
			if mixed {
				f := proper(src, den)
				return Operand{Value: Fraction{Num: src.Int(1, 4)*den + f.Num, Den: den}, ShowMixed: true}
			}
			num := src.Int(den+1, 3*den-1)
			if num%den == 0 {
				num++
			}
			return Operand{Value: Fraction{Num: num, Den: den}}
		}
		return draw(), draw()
	}
}

// DrawOperation draws a four-operations instance. Subtraction swaps the
// operands when the first is smaller and retries equal operands, so the
// answer is never negative or zero.
func DrawOperation(src *random.Source, s Settings) (OperationInstance, error) {
	op := s.Operation
	if op == Mixed {
		op = random.Pick(src, []Operation{Addition, Subtraction, Multiplication, Division})
	}

	var err error
	inst := problem.Retry(s.MaxAttempts, func(int) (OperationInstance, bool) {
		a, b := drawOperands(src, s.Difficulty)
		if op == Subtraction {
			switch a.Value.Cmp(b.Value) {
			case 0:
				return OperationInstance{}, false
			case -1:
				a, b = b, a
			}
		}
		return OperationInstance{Op: op, A: a, B: b, Result: apply(op, a.Value, b.Value)}, true
	}, func(e error) OperationInstance {
		err = e
		return OperationInstance{}
	})
	return inst, err
}

func apply(op Operation, a, b Fraction) Fraction {
	switch op {
	case Subtraction:
		return a.Sub(b)
	case Multiplication:
		return a.Mul(b)
	case Division:
		return a.Div(b)
	}
	return a.Add(b)
}

// RenderOperation writes the question in stored operand order.
func RenderOperation(inst OperationInstance) problem.Problem {
	q := markup.Row(inst.A.markup(), markup.Text(symbols[inst.Op]), inst.B.markup(), "= ?")
	return problem.Problem{Question: q, Answer: inst.Result.Answer()}
}

func maxDen(d problem.Difficulty) int {
	switch d {
	case problem.Easy:
		return 4
	case problem.Medium:
		return 8
	}
	return 12
}

// reducedProper draws a proper fraction already in lowest terms.
func reducedProper(src *random.Source, minDen, maxDen int) Fraction {
	den := src.Int(minDen, maxDen)
	var coprime []int
	for n := 1; n < den; n++ {
		if gcd(n, den) == 1 {
			coprime = append(coprime, n)
		}
	}
	return Fraction{Num: random.Pick(src, coprime), Den: den}
}

func recognition(src *random.Source, d problem.Difficulty) problem.Problem {
	f := reducedProper(src, 2, maxDen(d))
	q := svg.PieChart(f.Num, f.Den) + "<br>" + markup.Text("Şekilde boyalı kısmı gösteren kesri yazınız.")
	return problem.Problem{
		Question: q,
		Answer:   fmt.Sprintf("%s (%s)", f, numwords.FractionToWords(0, int64(f.Num), int64(f.Den))),
	}
}

func comparison(src *random.Source, d problem.Difficulty) problem.Problem {
	var a, b Fraction
	switch {
	case d == problem.Easy:
		den := src.Int(3, 10)
		a, b = proper(src, den), proper(src, den)
	case src.Chance(0.25):
		a = reducedProper(src, 2, 6)
		k := src.Int(2, 4)
		b = Fraction{Num: a.Num * k, Den: a.Den * k}
	default:
		a, b = proper(src, src.Int(2, maxDen(d))), proper(src, src.Int(2, maxDen(d)))
	}

	sign := "="
	switch a.Cmp(b) {
	case -1:
		sign = "<"
	case 1:
		sign = ">"
	}
	q := markup.Row(markup.Fraction(strconv.Itoa(a.Num), strconv.Itoa(a.Den)), markup.Box(),
		markup.Fraction(strconv.Itoa(b.Num), strconv.Itoa(b.Den))) +
		markup.Text("Kutuya <, > veya = işaretlerinden uygun olanı yazınız.")
	return problem.Problem{Question: q, Answer: sign}
}

func equivalence(src *random.Source, d problem.Difficulty) problem.Problem {
	base := reducedProper(src, 2, maxDen(d))
	k := src.Int(2, 5)
	scaled := Fraction{Num: base.Num * k, Den: base.Den * k}

	left := markup.Fraction(strconv.Itoa(base.Num), strconv.Itoa(base.Den))
	var right, answer string
	if src.Bool() {
		right = markup.FractionWithBox(strconv.Itoa(scaled.Den), true)
		answer = strconv.Itoa(scaled.Num)
	} else {
		right = markup.FractionWithBox(strconv.Itoa(scaled.Num), false)
		answer = strconv.Itoa(scaled.Den)
	}
	q := markup.Row(left, "=", right) + markup.Text("Denk kesri tamamlayınız.")
	return problem.Problem{Question: q, Answer: answer}
}

type item struct {
	noun     string
	genitive string
}

var setItems = []item{
	{"elma", "elmanın"},
	{"kalem", "kalemin"},
	{"bilye", "bilyenin"},
	{"kitap", "kitabın"},
	{"balon", "balonun"},
	{"ceviz", "cevizin"},
	{"öğrenci", "öğrencinin"},
}

func ofSet(src *random.Source, d problem.Difficulty) problem.Problem {
	f := reducedProper(src, 2, maxDen(d))
	k := src.Int(2, maxDen(d))
	total := f.Den * k
	it := random.Pick(src, setItems)
	q := fmt.Sprintf("Toplam %d %s %s kadarı kaç %s eder?", total, markup.Text(it.genitive),
		markup.Fraction(strconv.Itoa(f.Num), strconv.Itoa(f.Den)), markup.Text(it.noun))
	return problem.Problem{Question: q, Answer: fmt.Sprintf("%d %s", total/f.Den*f.Num, it.noun)}
}
