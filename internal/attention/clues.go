package attention

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
)

// BoxNames label the two containers.
var BoxNames = []string{"A", "B"}

type category struct {
	name   string
	phrase string
	words  []string
}

var categories = []category{
	{"fruit", "Bir meyve adıdır.", []string{"elma", "armut", "kiraz", "muz", "çilek", "karpuz", "üzüm", "erik", "incir", "kavun"}},
	{"animal", "Bir hayvan adıdır.", []string{"kedi", "köpek", "aslan", "kaplan", "tavşan", "zürafa", "fil", "kartal", "balık", "ayı"}},
	{"color", "Bir renk adıdır.", []string{"mavi", "kırmızı", "sarı", "yeşil", "mor", "turuncu", "beyaz", "siyah", "pembe", "gri"}},
	{"vehicle", "Bir taşıt adıdır.", []string{"araba", "otobüs", "tren", "uçak", "gemi", "bisiklet", "kamyon", "tramvay", "metro", "kayık"}},
	{"object", "Bir eşya adıdır.", []string{"masa", "sandalye", "kalem", "defter", "silgi", "çanta", "kitap", "saat", "lamba", "dolap"}},
}

func containerClue(answer Candidate) Clue {
	return Clue{
		Text: fmt.Sprintf("%s kutusundayım.", BoxNames[answer.Container]),
		Test: func(c Candidate, _ []Candidate, _ [][]Candidate) bool { return c.Container == answer.Container },
	}
}

func positionClue(answer Candidate) Clue {
	return Clue{
		Text: fmt.Sprintf("Kutumda yukarıdan %d. sıradayım.", answer.Index+1),
		Test: func(c Candidate, _ []Candidate, _ [][]Candidate) bool { return c.Index == answer.Index },
	}
}

// uniqueExtreme reports whether answer alone holds the extreme key in its box.
func uniqueExtreme(answer Candidate, box []Candidate, key func(Candidate) int, larger bool) bool {
	for _, c := range box {
		if c == answer {
			continue
		}
		if (larger && key(c) >= key(answer)) || (!larger && key(c) <= key(answer)) {
			return false
		}
	}
	return true
}

func extremeClue(text string, key func(Candidate) int, larger bool) Clue {
	return Clue{
		Text: text,
		Test: func(c Candidate, box []Candidate, _ [][]Candidate) bool {
			return uniqueExtreme(c, box, key, larger)
		},
	}
}

func digitCount(v int) int { return len(strconv.Itoa(v)) }

// numericClues returns every clue that holds for answer. Bounds are rounded
// to multiples of five to read naturally.
func numericClues(src *random.Source, answer Candidate, boxes [][]Candidate, d problem.Difficulty) []Clue {
	v := answer.Value
	box := boxes[answer.Container]
	value := func(c Candidate) int { return c.Value }

	clues := []Clue{containerClue(answer), positionClue(answer)}

	if v%2 == 0 {
		clues = append(clues, Clue{Text: "Çift sayıyım.", Test: func(c Candidate, _ []Candidate, _ [][]Candidate) bool { return c.Value%2 == 0 }})
	} else {
		clues = append(clues, Clue{Text: "Tek sayıyım.", Test: func(c Candidate, _ []Candidate, _ [][]Candidate) bool { return c.Value%2 != 0 }})
	}

	if uniqueExtreme(answer, box, value, true) {
		clues = append(clues, extremeClue("Kutumdaki en büyük sayıyım.", value, true))
	}
	if uniqueExtreme(answer, box, value, false) {
		clues = append(clues, extremeClue("Kutumdaki en küçük sayıyım.", value, false))
	}

	if d != problem.Easy {
		n := digitCount(v)
		clues = append(clues, Clue{
			Text: fmt.Sprintf("%d basamaklıyım.", n),
			Test: func(c Candidate, _ []Candidate, _ [][]Candidate) bool { return digitCount(c.Value) == n },
		})
	}

	lo, hi := numberRange(d)
	if v-1 >= lo {
		bound := src.Int(lo, v-1) / 5 * 5
		clues = append(clues, Clue{
			Text: fmt.Sprintf("%d sayısından büyüğüm.", bound),
			Test: func(c Candidate, _ []Candidate, _ [][]Candidate) bool { return c.Value > bound },
		})
	}
	if v+1 <= hi {
		bound := (src.Int(v+1, hi) + 4) / 5 * 5
		clues = append(clues, Clue{
			Text: fmt.Sprintf("%d sayısından küçüğüm.", bound),
			Test: func(c Candidate, _ []Candidate, _ [][]Candidate) bool { return c.Value < bound },
		})
	}

	var divisors []int
	for k := 3; k <= 9; k++ {
		if v%k == 0 {
			divisors = append(divisors, k)
		}
	}
	if len(divisors) > 0 {
		k := random.Pick(src, divisors)
		clues = append(clues, Clue{
			Text: fmt.Sprintf("%d ile tam bölünürüm.", k),
			Test: func(c Candidate, _ []Candidate, _ [][]Candidate) bool { return c.Value%k == 0 },
		})
	}

	ones := v % 10
	clues = append(clues, Clue{
		Text: fmt.Sprintf("Birler basamağımdaki rakam %d.", ones),
		Test: func(c Candidate, _ []Candidate, _ [][]Candidate) bool { return c.Value%10 == ones },
	})
	return clues
}

func upperFirst(w string) string {
	r, _ := utf8.DecodeRuneInString(w)
	return string(unicode.TurkishCase.ToUpper(r))
}

func lastLetter(w string) string {
	r, _ := utf8.DecodeLastRuneInString(w)
	return string(unicode.TurkishCase.ToUpper(r))
}

func verbalClues(answer Candidate, boxes [][]Candidate) []Clue {
	box := boxes[answer.Container]
	length := func(c Candidate) int { return c.Length() }
	n := answer.Length()
	first, last := upperFirst(answer.Word), lastLetter(answer.Word)

	clues := []Clue{
		containerClue(answer),
		positionClue(answer),
		{
			Text: fmt.Sprintf("%d harfliyim.", n),
			Test: func(c Candidate, _ []Candidate, _ [][]Candidate) bool { return c.Length() == n },
		},
		{
			Text: fmt.Sprintf("İlk harfim %s.", first),
			Test: func(c Candidate, _ []Candidate, _ [][]Candidate) bool { return upperFirst(c.Word) == first },
		},
		{
			Text: fmt.Sprintf("Son harfim %s.", last),
			Test: func(c Candidate, _ []Candidate, _ [][]Candidate) bool { return lastLetter(c.Word) == last },
		},
	}
	for _, cat := range categories {
		if cat.name == answer.Category {
			name := cat.name
			clues = append(clues, Clue{
				Text: cat.phrase,
				Test: func(c Candidate, _ []Candidate, _ [][]Candidate) bool { return c.Category == name },
			})
		}
	}
	if uniqueExtreme(answer, box, length, true) {
		clues = append(clues, extremeClue("Kutumdaki en uzun kelimeyim.", length, true))
	}
	if uniqueExtreme(answer, box, length, false) {
		clues = append(clues, extremeClue("Kutumdaki en kısa kelimeyim.", length, false))
	}
	if strings.ContainsAny(answer.Word, "aeıioöuü") {
		vowels := countVowels(answer.Word)
		clues = append(clues, Clue{
			Text: fmt.Sprintf("İçimde %d sesli harf var.", vowels),
			Test: func(c Candidate, _ []Candidate, _ [][]Candidate) bool { return countVowels(c.Word) == vowels },
		})
	}
	return clues
}

func countVowels(w string) int {
	n := 0
	for _, r := range w {
		if strings.ContainsRune("aeıioöuü", r) {
			n++
		}
	}
	return n
}
