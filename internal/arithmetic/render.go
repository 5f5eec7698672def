package arithmetic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/worksheetz/internal/markup"
	"github.com/abhisek/worksheetz/internal/numwords"
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
)

var symbols = map[Operation]string{
	Addition:       "+",
	Subtraction:    "-",
	Multiplication: "×",
	Division:       "÷",
}

var titles = map[Operation]string{
	Addition:       "Toplama İşlemi",
	Subtraction:    "Çıkarma İşlemi",
	Multiplication: "Çarpma İşlemi",
	Division:       "Bölme İşlemi",
	Mixed:          "Dört İşlem",
}

// wordTemplates hold the sentence bank for words mode. {a} and {b} are
// replaced by the operands written in words.
var wordTemplates = map[Operation][]string{
	Addition: {
		"{a} ile {b} sayılarının toplamı kaçtır?",
		"{a} artı {b} kaç eder?",
		"{a} sayısına {b} eklenirse kaç olur?",
	},
	Subtraction: {
		"{a} eksi {b} kaç eder?",
		"{a} sayısından {b} çıkarılırsa kaç kalır?",
		"{a} ile {b} sayılarının farkı kaçtır?",
	},
	Multiplication: {
		"{a} kere {b} kaç eder?",
		"{a} ile {b} sayılarının çarpımı kaçtır?",
		"{b} tane {a} toplanırsa kaç olur?",
	},
	Division: {
		"{a} bölü {b} kaç eder?",
		"{a} sayısı {b} eşit parçaya bölünürse her parça kaç olur?",
		"{a} sayısının içinde kaç tane {b} vardır?",
	},
}

var remainderTemplates = []string{
	"{a} sayısı {b} sayısına bölünürse bölüm ve kalan kaçtır?",
	"{a} bölü {b} işleminde bölüm ve kalan nedir?",
}

// Render turns inst into a problem laid out as s.Format asks. Long-division
// layout applies to divisions only; other operations fall back to vertical.
func Render(src *random.Source, inst Instance, s Settings) problem.Problem {
	p := problem.Problem{
		Answer:   answer(inst),
		Category: problem.CategoryArithmetic,
		Display:  problem.DisplayInline,
	}
	a, b := strconv.Itoa(inst.A), strconv.Itoa(inst.B)

	switch {
	case s.WordsMode:
		bank := wordTemplates[inst.Op]
		if inst.Op == Division && inst.Remainder != 0 {
			bank = remainderTemplates
		}
		r := strings.NewReplacer(
			"{a}", numwords.NumberToWords(int64(inst.A)),
			"{b}", numwords.NumberToWords(int64(inst.B)),
		)
		p.Question = markup.Text(r.Replace(random.Pick(src, bank)))
		p.Answer = fmt.Sprintf("%s (%s)", p.Answer, answerWords(inst))

	case s.Format == problem.DisplayLongDivision && inst.Op == Division:
		p.Question = markup.LongDivision(a, b)
		p.Display = problem.DisplayLongDivision

	case s.Format == problem.DisplayVertical, s.Format == problem.DisplayLongDivision:
		p.Question = markup.Vertical(symbols[inst.Op], a, b)
		p.Display = problem.DisplayVertical

	default:
		p.Question = markup.Text(fmt.Sprintf("%s %s %s = ?", a, symbols[inst.Op], b))
	}
	return p
}

func answer(inst Instance) string {
	if inst.Op == Division && inst.Remainder != 0 {
		return fmt.Sprintf("%d kalan %d", inst.Result, inst.Remainder)
	}
	return strconv.Itoa(inst.Result)
}

func answerWords(inst Instance) string {
	w := numwords.NumberToWords(int64(inst.Result))
	if inst.Op == Division && inst.Remainder != 0 {
		w += " kalan " + numwords.NumberToWords(int64(inst.Remainder))
	}
	return w
}

// Generate draws and renders one problem.
func Generate(src *random.Source, s Settings) problem.Result {
	title := titles[s.Operation]
	if title == "" {
		title = titles[Mixed]
	}
	inst, err := Draw(src, s)
	if err != nil {
		return problem.Fail(title, problem.CategoryArithmetic, err)
	}
	return problem.OK(Render(src, inst, s), title)
}
