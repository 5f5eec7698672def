package numwords

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTooManyDecimals is returned for fractional parts the lexicon cannot name.
var ErrTooManyDecimals = errors.New("numwords: too many decimal places")

// ErrNotANumber is returned when a decimal string cannot be parsed.
var ErrNotANumber = errors.New("numwords: not a number")

// NumberToWords writes n in words using the Turkish lexicon.
func NumberToWords(n int64) string { return Turkish.NumberToWords(n) }

// DecimalToWords writes a decimal string such as "3,25" in words using the Turkish lexicon.
func DecimalToWords(s string) (string, error) { return Turkish.DecimalToWords(s) }

// WordsToNumber parses written Turkish back into a number. Best effort only.
func WordsToNumber(s string) int64 { return Turkish.WordsToNumber(s) }

// FractionToWords writes a fraction or mixed number in words using the Turkish lexicon.
func FractionToWords(whole, num, den int64) string { return Turkish.FractionToWords(whole, num, den) }

// NumberToWords chunks |n| into groups of three digits and names each nonzero
// group followed by its scale word.
func (l Lexicon) NumberToWords(n int64) string {
	if n == 0 {
		return l.Zero
	}
	var parts []string
	u := uint64(n)
	if n < 0 {
		parts = append(parts, l.Negative)
		u = uint64(-n)
	}

	var groups []int
	for u > 0 {
		groups = append(groups, int(u%1000))
		u /= 1000
	}

	for scale := len(groups) - 1; scale >= 0; scale-- {
		g := groups[scale]
		if g == 0 {
			continue
		}
		if scale > 0 && g == 1 && l.OmitOneBeforeScale[scale] {
			parts = append(parts, l.scaleWord(scale))
			continue
		}
		parts = append(parts, l.groupWords(g)...)
		if scale > 0 {
			parts = append(parts, l.scaleWord(scale))
		}
	}
	return strings.Join(parts, " ")
}

func (l Lexicon) scaleWord(scale int) string {
	if scale-1 < len(l.Scales) {
		return l.Scales[scale-1]
	}
	return l.Scales[len(l.Scales)-1]
}

// groupWords names a number in [1, 999].
func (l Lexicon) groupWords(g int) []string {
	var out []string
	h, t, o := g/100, (g/10)%10, g%10
	if h > 0 {
		if h > 1 || !l.OmitOneBeforeHundred {
			out = append(out, l.Ones[h])
		}
		out = append(out, l.Hundred)
	}
	if t > 0 {
		out = append(out, l.Tens[t])
	}
	if o > 0 {
		out = append(out, l.Ones[o])
	}
	return out
}

// DecimalToWords accepts either '.' or ',' as the separator. The fractional
// digits are read as one integer over the place named by their count:
// "3,05" is "üç tam yüzde beş".
func (l Lexicon) DecimalToWords(s string) (string, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	whole, err := parseDigits(intPart)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrNotANumber, s)
	}

	var b strings.Builder
	if neg {
		b.WriteString(l.Negative)
		b.WriteByte(' ')
	}
	b.WriteString(l.NumberToWords(whole))

	fracPart = strings.TrimRight(fracPart, "0")
	if !hasFrac || fracPart == "" {
		return b.String(), nil
	}
	if len(fracPart) > len(l.DecimalPlaces) {
		return "", fmt.Errorf("%w: %q", ErrTooManyDecimals, s)
	}
	frac, err := parseDigits(fracPart)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	fmt.Fprintf(&b, " %s %s %s", l.DecimalMarker, l.DecimalPlaces[len(fracPart)-1], l.NumberToWords(frac))
	return b.String(), nil
}

func parseDigits(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	var n int64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrNotANumber
		}
		n = n*10 + int64(r-'0')
	}
	return n, nil
}

// FractionToWords writes num/den, prefixed by the whole part when it is
// nonzero: (2, 3, 4) is "iki tam dörtte üç".
func (l Lexicon) FractionToWords(whole, num, den int64) string {
	frac := l.Locative.Apply(l.NumberToWords(den)) + " " + l.NumberToWords(num)
	if whole == 0 {
		return frac
	}
	return l.NumberToWords(whole) + " " + l.DecimalMarker + " " + frac
}

// WordsToNumber accumulates greedily from left to right. Unit and ten words
// add to the running value, the hundred word multiplies it and scale words
// flush it into the total. Unknown words are skipped. The parse is lossy for
// phrases outside the forms NumberToWords produces.
func (l Lexicon) WordsToNumber(s string) int64 {
	var total, current int64
	neg := false
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if w == l.Negative {
			neg = true
			continue
		}
		if w == l.Zero {
			continue
		}
		if v, ok := indexOf(l.Ones[:], w); ok {
			current += int64(v)
			continue
		}
		if v, ok := indexOf(l.Tens[:], w); ok {
			current += int64(v) * 10
			continue
		}
		if w == l.Hundred {
			if current == 0 {
				current = 1
			}
			current *= 100
			continue
		}
		if v, ok := indexOf(l.Scales, w); ok {
			if current == 0 {
				current = 1
			}
			mult := int64(1)
			for range v + 1 {
				mult *= 1000
			}
			total += current * mult
			current = 0
		}
	}
	total += current
	if neg {
		return -total
	}
	return total
}

func indexOf(words []string, w string) (int, bool) {
	for i, x := range words {
		if x != "" && x == w {
			return i, true
		}
	}
	return 0, false
}
