package numwords

import (
	"errors"
	"testing"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "sıfır"},
		{1, "bir"},
		{10, "on"},
		{11, "on bir"},
		{45, "kırk beş"},
		{100, "yüz"},
		{101, "yüz bir"},
		{256, "iki yüz elli altı"},
		{1000, "bin"},
		{1001, "bin bir"},
		{2000, "iki bin"},
		{123456, "yüz yirmi üç bin dört yüz elli altı"},
		{1000000, "bir milyon"},
		{2001000, "iki milyon bin"},
		{-7, "eksi yedi"},
	}
	for _, tt := range tests {
		if got := NumberToWords(tt.n); got != tt.want {
			t.Errorf("NumberToWords(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestWordsToNumberRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 10, 11, 100, 1000, 1001, 123456} {
		if got := WordsToNumber(NumberToWords(n)); got != n {
			t.Errorf("round trip of %d gave %d (%q)", n, got, NumberToWords(n))
		}
	}
}

func TestDecimalToWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3,25", "üç tam yüzde yirmi beş"},
		{"3.05", "üç tam yüzde beş"},
		{"0,5", "sıfır tam onda beş"},
		{"12,125", "on iki tam binde yüz yirmi beş"},
		{"7,0", "yedi"},
		{"-1,5", "eksi bir tam onda beş"},
	}
	for _, tt := range tests {
		got, err := DecimalToWords(tt.in)
		if err != nil {
			t.Fatalf("DecimalToWords(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("DecimalToWords(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecimalToWordsErrors(t *testing.T) {
	if _, err := DecimalToWords("1,2345"); !errors.Is(err, ErrTooManyDecimals) {
		t.Errorf("expected ErrTooManyDecimals, got %v", err)
	}
	if _, err := DecimalToWords("abc"); !errors.Is(err, ErrNotANumber) {
		t.Errorf("expected ErrNotANumber, got %v", err)
	}
}

func TestFractionToWords(t *testing.T) {
	tests := []struct {
		whole, num, den int64
		want            string
	}{
		{0, 3, 4, "dörtte üç"},
		{0, 1, 2, "ikide bir"},
		{0, 2, 3, "üçte iki"},
		{0, 5, 6, "altıda beş"},
		{0, 1, 9, "dokuzda bir"},
		{0, 7, 10, "onda yedi"},
		{2, 3, 4, "iki tam dörtte üç"},
	}
	for _, tt := range tests {
		if got := FractionToWords(tt.whole, tt.num, tt.den); got != tt.want {
			t.Errorf("FractionToWords(%d, %d, %d) = %q, want %q", tt.whole, tt.num, tt.den, got, tt.want)
		}
	}
}

func TestLocativeRuleIsParameterized(t *testing.T) {
	rule := LocativeRule{
		BackVowels: "aou", FrontVowels: "ei", HardConsonants: "k",
		BackVowel: "A", FrontVowel: "E", HardConsonant: "K", SoftConsonant: "G",
	}
	if got := rule.Apply("tak"); got != "takKA" {
		t.Errorf("got %q", got)
	}
	if got := rule.Apply("bil"); got != "bilGE" {
		t.Errorf("got %q", got)
	}
}
