// Package placevalue generates digit value, place name, rounding, expanded
// form and number composition exercises.
package placevalue

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/worksheetz/internal/markup"
	"github.com/abhisek/worksheetz/internal/numwords"
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
)

// Type selects the exercise.
type Type string

const (
	DigitValue          Type = "digit-value"
	PlaceName           Type = "place-name"
	Rounding            Type = "rounding"
	ExpandedForm        Type = "expanded-form"
	ComposeFromExpanded Type = "compose-from-expanded"
	ComposeFromWords    Type = "compose-from-words"
	ComposeFromClues    Type = "compose-from-clues"
)

// Magnitude is the place a number is rounded to.
type Magnitude string

const (
	Tens         Magnitude = "tens"
	Hundreds     Magnitude = "hundreds"
	Thousands    Magnitude = "thousands"
	AnyMagnitude Magnitude = "random"
)

var divisors = map[Magnitude]int{Tens: 10, Hundreds: 100, Thousands: 1000}

var magnitudeNames = map[Magnitude]string{Tens: "onluğa", Hundreds: "yüzlüğe", Thousands: "binliğe"}

// placeNames index by position, ones first.
var placeNames = []string{
	"birler", "onlar", "yüzler", "binler", "on binler", "yüz binler", "milyonlar",
}

var pow10 = [...]int{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000}

// MaxDigits is the largest supported number length.
const MaxDigits = 7

type Settings struct {
	Type   Type `json:"type"`
	Digits int  `json:"digits"`
	// RoundTo applies to rounding exercises.
	RoundTo Magnitude `json:"roundTo,omitempty"`
	// Shuffled presents expanded terms out of order when composing.
	Shuffled bool `json:"shuffled,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{Type: DigitValue, Digits: 3, RoundTo: Tens}
}

func (s Settings) Validate() error {
	switch s.Type {
	case DigitValue, PlaceName, Rounding, ExpandedForm, ComposeFromExpanded, ComposeFromWords, ComposeFromClues:
	default:
		return problem.InvalidSettings("unknown place value type %q", s.Type)
	}
	if s.Digits < 2 || s.Digits > MaxDigits {
		return problem.InvalidSettings("digits must be between 2 and %d, got %d", MaxDigits, s.Digits)
	}
	if s.Type == Rounding {
		if _, ok := divisors[s.RoundTo]; !ok && s.RoundTo != AnyMagnitude {
			return problem.InvalidSettings("unknown rounding magnitude %q", s.RoundTo)
		}
		if d, ok := divisors[s.RoundTo]; ok && d >= pow10[s.Digits] {
			return problem.InvalidSettings("a %d-digit number cannot be rounded to %s", s.Digits, s.RoundTo)
		}
	}
	return nil
}

// Round rounds n to the nearest multiple of divisor, halves up.
func Round(n, divisor int) int {
	return (n + divisor/2) / divisor * divisor
}

// Digit returns the digit of n at pos (0 = ones).
func Digit(n, pos int) int {
	return n / pow10[pos] % 10
}

// Terms decomposes n into its nonzero place values, largest first.
func Terms(n int) []int {
	var out []int
	for pos := len(strconv.Itoa(n)) - 1; pos >= 0; pos-- {
		if d := Digit(n, pos); d != 0 {
			out = append(out, d*pow10[pos])
		}
	}
	return out
}

// distinctDigits draws a number with the given length and no repeated digit.
func distinctDigits(src *random.Source, digits int) int {
	lead := src.Int(1, 9)
	rest := random.Sample(src, without([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, lead), digits-1)
	n := lead
	for _, d := range rest {
		n = n*10 + d
	}
	return n
}

func without(xs []int, x int) []int {
	out := make([]int, 0, len(xs))
	for _, v := range xs {
		if v != x {
			out = append(out, v)
		}
	}
	return out
}

func number(src *random.Source, digits int) int {
	return src.Int(pow10[digits-1], pow10[digits]-1)
}

var titles = map[Type]string{
	DigitValue:          "Basamak Değeri",
	PlaceName:           "Basamak Adı",
	Rounding:            "Yuvarlama",
	ExpandedForm:        "Çözümleme",
	ComposeFromExpanded: "Çözümlenmiş Sayıyı Yazma",
	ComposeFromWords:    "Okunuşu Verilen Sayıyı Yazma",
	ComposeFromClues:    "İpuçlarından Sayı Oluşturma",
}

func Generate(src *random.Source, s Settings) problem.Result {
	title := titles[s.Type]
	if title == "" {
		title = "Basamak Değeri"
	}
	if err := s.Validate(); err != nil {
		return problem.Fail(title, problem.CategoryPlaceValue, err)
	}

	var q, a string
	switch s.Type {
	case DigitValue:
		n := distinctDigits(src, s.Digits)
		pos := nonzeroPosition(src, n, s.Digits)
		d := Digit(n, pos)
		q = fmt.Sprintf("%s sayısındaki %s rakamının basamak değeri kaçtır?", markup.Bold(strconv.Itoa(n)), markup.Bold(strconv.Itoa(d)))
		a = strconv.Itoa(d * pow10[pos])

	case PlaceName:
		n := distinctDigits(src, s.Digits)
		pos := nonzeroPosition(src, n, s.Digits)
		q = fmt.Sprintf("%s sayısındaki %s rakamı hangi basamaktadır?", markup.Bold(strconv.Itoa(n)), markup.Bold(strconv.Itoa(Digit(n, pos))))
		a = placeNames[pos] + " basamağı"

	case Rounding:
		mag := s.RoundTo
		if mag == AnyMagnitude {
			var eligible []Magnitude
			for _, m := range []Magnitude{Tens, Hundreds, Thousands} {
				if divisors[m] < pow10[s.Digits] {
					eligible = append(eligible, m)
				}
			}
			mag = random.Pick(src, eligible)
		}
		n := number(src, s.Digits)
		q = fmt.Sprintf("%s sayısını en yakın %s yuvarlayınız.", markup.Bold(strconv.Itoa(n)), magnitudeNames[mag])
		a = strconv.Itoa(Round(n, divisors[mag]))

	case ExpandedForm:
		n := number(src, s.Digits)
		q = fmt.Sprintf("%s sayısını çözümleyiniz.", markup.Bold(strconv.Itoa(n)))
		a = joinTerms(Terms(n))

	case ComposeFromExpanded:
		n := number(src, s.Digits)
		terms := Terms(n)
		if s.Shuffled {
			terms = random.Shuffle(src, terms)
		}
		q = markup.Text(fmt.Sprintf("%s = ?", joinTerms(terms)))
		a = strconv.Itoa(n)

	case ComposeFromWords:
		n := number(src, s.Digits)
		q = fmt.Sprintf("Okunuşu %s olan sayıyı rakamlarla yazınız.", markup.Bold(`"`+numwords.NumberToWords(int64(n))+`"`))
		a = strconv.Itoa(n)

	case ComposeFromClues:
		n, clues := clueNumber(src, s.Digits)
		q = markup.Text(s.cluePrompt()) + "<br>" + markup.Lines(clues...)
		a = strconv.Itoa(n)
	}
	return problem.OK(problem.Problem{Question: q, Answer: a, Category: problem.CategoryPlaceValue, Display: problem.DisplayInline}, title)
}

func (s Settings) cluePrompt() string {
	return fmt.Sprintf("Aşağıdaki ipuçlarına göre %d basamaklı sayıyı bulunuz. Verilmeyen basamaklar sıfırdır.", s.Digits)
}

func nonzeroPosition(src *random.Source, n, digits int) int {
	var positions []int
	for pos := range digits {
		if Digit(n, pos) != 0 {
			positions = append(positions, pos)
		}
	}
	return random.Pick(src, positions)
}

func joinTerms(terms []int) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, " + ")
}

// clueNumber picks 1 to 3 nonzero positions, always including the leading
// one so the digit count is determined, and describes each as a clue.
func clueNumber(src *random.Source, digits int) (int, []string) {
	lead := digits - 1
	others := make([]int, 0, lead)
	for pos := range lead {
		others = append(others, pos)
	}
	extra := src.Int(0, min(2, len(others)))
	positions := append([]int{lead}, random.Sample(src, others, extra)...)

	n := 0
	clues := make([]string, 0, len(positions))
	for _, pos := range random.Shuffle(src, positions) {
		d := src.Int(1, 9)
		n += d * pow10[pos]
		clues = append(clues, markup.Text(fmt.Sprintf("%s basamağındaki rakam %d.", capitalize(placeNames[pos]), d)))
	}
	return n, clues
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
