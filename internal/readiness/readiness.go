// Package readiness generates early math sheets over small picture pools:
// counting, comparing, patterns, positions and first additions.
package readiness

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/worksheetz/internal/markup"
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
	"github.com/abhisek/worksheetz/internal/svg"
)

type Type string

const (
	Matching           Type = "matching"
	Comparing          Type = "comparing"
	NumberRecognition  Type = "number-recognition"
	Patterns           Type = "patterns"
	Positional         Type = "positional"
	IntroMeasurement   Type = "intro-measurement"
	SimpleGraphs       Type = "simple-graphs"
	VisualArithmetic   Type = "visual-arithmetic"
	VerbalArithmetic   Type = "verbal-arithmetic"
	MissingNumber      Type = "missing-number"
	SymbolicArithmetic Type = "symbolic-arithmetic"
	ProblemCreation    Type = "problem-creation"
)

var titles = map[Type]string{
	Matching:           "Sayı ve Çokluk Eşleştirme",
	Comparing:          "Çoklukları Karşılaştırma",
	NumberRecognition:  "Sayıları Tanıma",
	Patterns:           "Örüntüler",
	Positional:         "Sıra ve Konum",
	IntroMeasurement:   "Uzunluk Karşılaştırma",
	SimpleGraphs:       "Basit Grafikler",
	VisualArithmetic:   "Resimli Toplama ve Çıkarma",
	VerbalArithmetic:   "Sözel Problemler",
	MissingNumber:      "Eksik Sayıyı Bulma",
	SymbolicArithmetic: "Sembollerle İşlemler",
	ProblemCreation:    "Problem Kurma",
}

type Settings struct {
	Type  Type  `json:"type"`
	Theme Theme `json:"theme"`
	// MaxNumber bounds every count and result.
	MaxNumber int `json:"maxNumber"`
}

func DefaultSettings() Settings {
	return Settings{Type: Matching, Theme: AnyTheme, MaxNumber: 10}
}

func (s Settings) Validate() error {
	if _, ok := titles[s.Type]; !ok {
		return problem.InvalidSettings("unknown readiness type %q", s.Type)
	}
	if _, ok := themes[s.Theme]; !ok && s.Theme != AnyTheme {
		return problem.InvalidSettings("unknown theme %q", s.Theme)
	}
	if s.MaxNumber < 5 || s.MaxNumber > 20 {
		return problem.InvalidSettings("max number must be between 5 and 20, got %d", s.MaxNumber)
	}
	return nil
}

func Generate(src *random.Source, s Settings) problem.Result {
	title := titles[s.Type]
	if title == "" {
		title = "Matematiğe Hazırlık"
	}
	if err := s.Validate(); err != nil {
		return problem.Fail(title, problem.CategoryReadiness, err)
	}
	theme := s.Theme
	if theme == AnyTheme {
		theme = random.Pick(src, []Theme{Animals, Fruits, Vehicles})
	}
	g := gen{src: src, pool: themes[theme], theme: theme, max: s.MaxNumber}

	var q, a string
	switch s.Type {
	case Matching:
		q, a = g.matching()
	case Comparing:
		q, a = g.comparing()
	case NumberRecognition:
		q, a = g.numberRecognition()
	case Patterns:
		q, a = g.patterns()
	case Positional:
		q, a = g.positional()
	case IntroMeasurement:
		q, a = g.introMeasurement()
	case SimpleGraphs:
		q, a = g.simpleGraph()
	case VisualArithmetic:
		q, a = g.visualArithmetic()
	case VerbalArithmetic:
		q, a = g.verbalArithmetic()
	case MissingNumber:
		q, a = g.missingNumber()
	case SymbolicArithmetic:
		q, a = g.symbolic()
	case ProblemCreation:
		q, a = g.problemCreation()
	}
	return problem.OK(problem.Problem{Question: q, Answer: a, Category: problem.CategoryReadiness, Display: problem.DisplayInline}, title)
}

type gen struct {
	src   *random.Source
	pool  []Item
	theme Theme
	max   int
}

func repeat(it Item, n int) string {
	return `<span class="pictures" style="font-size:1.6em;letter-spacing:0.1em;">` + strings.Repeat(it.Emoji, n) + `</span>`
}

func (g gen) item() Item { return random.Pick(g.src, g.pool) }

func (g gen) matching() (string, string) {
	it := g.item()
	n := g.src.Int(1, g.max)
	options := []int{n}
	for len(options) < 3 {
		o := g.src.Int(1, g.max)
		if !contains(options, o) {
			options = append(options, o)
		}
	}
	boxes := make([]string, 0, 3)
	for _, o := range random.Shuffle(g.src, options) {
		boxes = append(boxes, markup.FilledBox(strconv.Itoa(o)))
	}
	q := repeat(it, n) + "<br>" + markup.Text("Resimdeki "+it.Name+" sayısını gösteren kutuyu işaretleyiniz.") + markup.Row(boxes...)
	return q, strconv.Itoa(n)
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// distinctCounts draws two different counts in [1, max].
func (g gen) distinctCounts() (int, int) {
	a := g.src.Int(1, g.max)
	b := g.src.Int(1, g.max-1)
	if b >= a {
		b++
	}
	return a, b
}

// comparing never shows two groups of equal size.
func (g gen) comparing() (string, string) {
	it := g.item()
	a, b := g.distinctCounts()
	more := g.src.Bool()
	word, answer := "çok", "1. grup"
	if more == (b > a) {
		answer = "2. grup"
	}
	if !more {
		word = "az"
	}
	q := markup.Lines("1. grup: "+repeat(it, a), "2. grup: "+repeat(it, b)) +
		"<br>" + markup.Text(fmt.Sprintf("Hangi grupta daha %s %s var?", word, it.Name))
	return q, answer
}

func (g gen) numberRecognition() (string, string) {
	it := g.item()
	n := g.src.Int(1, g.max)
	q := markup.Bold(strconv.Itoa(n)) + " " + markup.Text("sayısı kadar "+it.Name+" çiziniz.")
	return q, repeat(it, n)
}

var patternShapes = [][]int{
	{0, 1},
	{0, 0, 1},
	{0, 1, 1},
	{0, 1, 2},
	{0, 0, 1, 1},
}

func (g gen) patterns() (string, string) {
	shape := random.Pick(g.src, patternShapes)
	items := random.Sample(g.src, g.pool, 3)
	length := len(shape) * 2
	if length < 6 {
		length = 6
	}
	seq := make([]string, length+1)
	for i := range seq {
		seq[i] = items[shape[i%len(shape)]].Emoji
	}
	q := markup.Text("Örüntüyü devam ettiriniz: ") +
		markup.Row(append(wrapAll(seq[:length]), markup.Box())...)
	return q, seq[length]
}

func wrapAll(xs []string) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = `<span style="font-size:1.6em;">` + x + `</span>`
	}
	return out
}

func (g gen) positional() (string, string) {
	items := random.Shuffle(g.src, g.pool)
	row := make([]string, len(items))
	for i, it := range items {
		row[i] = it.Emoji
	}
	pos := g.src.Intn(len(items))
	side, idx := "Soldan", pos
	if g.src.Bool() {
		side, idx = "Sağdan", len(items)-1-pos
	}
	q := markup.Row(wrapAll(row)...) + markup.Text(fmt.Sprintf("%s %d. sırada hangisi var?", side, idx+1))
	return q, items[pos].Emoji + " " + items[pos].Name
}

func (g gen) introMeasurement() (string, string) {
	a := g.src.Int(2, 10)
	b := g.src.Int(2, 9)
	if b >= a {
		b++
	}
	bar := func(n int) string { return strings.Repeat("🟩", n) }
	longer := g.src.Bool()
	word := "uzun"
	if !longer {
		word = "kısa"
	}
	answer := "A"
	if longer == (b > a) {
		answer = "B"
	}
	q := markup.Lines("A: "+bar(a), "B: "+bar(b)) + "<br>" + markup.Text(fmt.Sprintf("Hangisi daha %s?", word))
	return q, answer
}

// simpleGraph always has a unique largest bar.
func (g gen) simpleGraph() (string, string) {
	items := random.Sample(g.src, g.pool, 3)
	limit := min(g.max, 8)
	counts := random.Sample(g.src, seq(1, limit), 3)
	labels := make([]string, 3)
	best := 0
	for i := range items {
		labels[i] = items[i].Emoji
		if counts[i] > counts[best] {
			best = i
		}
	}
	q := svg.BarGraph(labels, counts) + "<br>" + markup.Text("Grafiğe göre en çok hangisi var?")
	return q, items[best].Emoji + " " + items[best].Name
}

func seq(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

func (g gen) visualArithmetic() (string, string) {
	it := g.item()
	if g.src.Bool() {
		a := g.src.Int(1, g.max-1)
		b := g.src.Int(1, g.max-a)
		return repeat(it, a) + " + " + repeat(it, b) + " = ?", strconv.Itoa(a + b)
	}
	a := g.src.Int(2, g.max)
	b := g.src.Int(1, a-1)
	crossed := `<span style="font-size:1.6em;text-decoration:line-through;opacity:0.5;">` + strings.Repeat(it.Emoji, b) + `</span>`
	q := repeat(it, a-b) + crossed + "<br>" + markup.Text(fmt.Sprintf("%d %s vardı, %d tanesi gitti. Kaç tane kaldı?", a, it.Name, b))
	return q, strconv.Itoa(a - b)
}

func (g gen) verbalArithmetic() (string, string) {
	it := g.item()
	place := containers[g.theme]
	if g.src.Bool() {
		a := g.src.Int(1, g.max-1)
		b := g.src.Int(1, g.max-a)
		q := fmt.Sprintf("%s %d %s vardı. %d %s daha geldi. Şimdi kaç %s var?", place, a, it.Name, b, it.Name, it.Name)
		return markup.Text(q), strconv.Itoa(a + b)
	}
	a := g.src.Int(2, g.max)
	b := g.src.Int(1, a-1)
	q := fmt.Sprintf("%s %d %s vardı. %d %s gitti. Geriye kaç %s kaldı?", place, a, it.Name, b, it.Name, it.Name)
	return markup.Text(q), strconv.Itoa(a - b)
}

// missingNumber hides exactly one of the three terms of a + b = c, chosen
// uniformly.
func (g gen) missingNumber() (string, string) {
	a := g.src.Int(0, g.max-1)
	b := g.src.Int(1, g.max-a)
	terms := []string{strconv.Itoa(a), strconv.Itoa(b), strconv.Itoa(a + b)}
	hide := g.src.Intn(3)
	answer := terms[hide]
	parts := make([]string, 3)
	for i, t := range terms {
		parts[i] = markup.Text(t)
	}
	parts[hide] = markup.Box()
	return markup.Row(parts[0], "+", parts[1], "=", parts[2]), answer
}

func (g gen) symbolic() (string, string) {
	items := random.Sample(g.src, g.pool, 2)
	a := g.src.Int(1, g.max/2)
	b := g.src.Int(1, g.max-a)
	q := markup.Lines(
		fmt.Sprintf("%s = %d", items[0].Emoji, a),
		fmt.Sprintf("%s = %d", items[1].Emoji, b),
		fmt.Sprintf("%s + %s = ?", items[0].Emoji, items[1].Emoji),
	)
	return q, strconv.Itoa(a + b)
}

func (g gen) problemCreation() (string, string) {
	it := g.item()
	a := g.src.Int(1, g.max-1)
	b := g.src.Int(1, g.max-a)
	q := repeat(it, a) + " + " + repeat(it, b) + "<br>" +
		markup.Text("Resme uygun bir toplama problemi yazınız ve çözünüz.")
	return q, fmt.Sprintf("%d + %d = %d", a, b, a+b)
}
