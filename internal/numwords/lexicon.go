// Package numwords converts numbers to their written Turkish form and back.
//
// The grammar is table driven: a Lexicon carries every word and the suffix
// rule, so the algorithms in this package do not hardcode the language.
package numwords

import "strings"

// LocativeRule picks the locative suffix for a word from its final sounds.
// The vowel of the suffix follows the last vowel of the word (back or front);
// its consonant hardens after a voiceless final letter.
type LocativeRule struct {
	BackVowels     string
	FrontVowels    string
	HardConsonants string
	BackVowel      string
	FrontVowel     string
	HardConsonant  string
	SoftConsonant  string
}

// Apply returns word with the locative suffix attached.
func (r LocativeRule) Apply(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	vowel := r.FrontVowel
	for i := len(runes) - 1; i >= 0; i-- {
		if strings.ContainsRune(r.BackVowels, runes[i]) {
			vowel = r.BackVowel
			break
		}
		if strings.ContainsRune(r.FrontVowels, runes[i]) {
			break
		}
	}
	consonant := r.SoftConsonant
	if strings.ContainsRune(r.HardConsonants, runes[len(runes)-1]) {
		consonant = r.HardConsonant
	}
	return word + consonant + vowel
}

// Lexicon is the vocabulary of one numeral grammar.
type Lexicon struct {
	Zero     string
	Negative string
	Ones     [10]string
	Tens     [10]string
	Hundred  string
	// Scales holds the word for each group of three digits above the first.
	Scales []string
	// OmitOneBeforeHundred drops "one" in front of the hundred word.
	OmitOneBeforeHundred bool
	// OmitOneBeforeScale lists scale indexes (1 = thousands) that drop "one".
	OmitOneBeforeScale map[int]bool
	// DecimalMarker joins the integer part and the fractional part.
	DecimalMarker string
	// DecimalPlaces names the denominator for 1, 2 and 3 fractional digits.
	DecimalPlaces []string
	Locative      LocativeRule
}

// Turkish is the lexicon used by the package-level helpers.
var Turkish = Lexicon{
	Zero:                 "sıfır",
	Negative:             "eksi",
	Ones:                 [10]string{"", "bir", "iki", "üç", "dört", "beş", "altı", "yedi", "sekiz", "dokuz"},
	Tens:                 [10]string{"", "on", "yirmi", "otuz", "kırk", "elli", "altmış", "yetmiş", "seksen", "doksan"},
	Hundred:              "yüz",
	Scales:               []string{"bin", "milyon", "milyar", "trilyon", "katrilyon", "kentilyon"},
	OmitOneBeforeHundred: true,
	OmitOneBeforeScale:   map[int]bool{1: true},
	DecimalMarker:        "tam",
	DecimalPlaces:        []string{"onda", "yüzde", "binde"},
	Locative: LocativeRule{
		BackVowels:     "aıou",
		FrontVowels:    "eiöü",
		HardConsonants: "fstkçşhp",
		BackVowel:      "a",
		FrontVowel:     "e",
		HardConsonant:  "t",
		SoftConsonant:  "d",
	},
}
