// Package fractions generates fraction arithmetic, recognition, comparison,
// equivalence and fraction-of-a-set problems.
package fractions

import (
	"fmt"
	"strconv"
)

// Fraction is a rational number with a positive denominator.
type Fraction struct {
	Num int
	Den int
}

// New returns num/den with the sign moved to the numerator, reduced.
// den must be nonzero.
func New(num, den int) Fraction {
	if den < 0 {
		num, den = -num, -den
	}
	return Fraction{Num: num, Den: den}.Reduce()
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Reduce divides out the greatest common divisor.
func (f Fraction) Reduce() Fraction {
	g := gcd(abs(f.Num), f.Den)
	if g <= 1 {
		return f
	}
	return Fraction{Num: f.Num / g, Den: f.Den / g}
}

// IsReduced reports whether gcd(num, den) is 1.
func (f Fraction) IsReduced() bool {
	return gcd(abs(f.Num), f.Den) == 1
}

func (f Fraction) Add(o Fraction) Fraction { return New(f.Num*o.Den+o.Num*f.Den, f.Den*o.Den) }
func (f Fraction) Sub(o Fraction) Fraction { return New(f.Num*o.Den-o.Num*f.Den, f.Den*o.Den) }
func (f Fraction) Mul(o Fraction) Fraction { return New(f.Num*o.Num, f.Den*o.Den) }

// Div panics when o is zero, like integer division.
func (f Fraction) Div(o Fraction) Fraction { return New(f.Num*o.Den, f.Den*o.Num) }

// Cmp returns -1, 0 or 1 as f is less than, equal to or greater than o.
func (f Fraction) Cmp(o Fraction) int {
	l, r := f.Num*o.Den, o.Num*f.Den
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}

// Mixed splits an improper fraction into a whole part and a proper remainder.
func (f Fraction) Mixed() (whole int, rem Fraction) {
	whole = f.Num / f.Den
	return whole, Fraction{Num: f.Num - whole*f.Den, Den: f.Den}
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Answer formats f reduced: an integer when the denominator divides out,
// "W a/b" when improper and "a/b" otherwise.
func (f Fraction) Answer() string {
	r := f.Reduce()
	if r.Den == 1 {
		return strconv.Itoa(r.Num)
	}
	if abs(r.Num) > r.Den {
		whole, rem := r.Mixed()
		return fmt.Sprintf("%d %d/%d", whole, abs(rem.Num), rem.Den)
	}
	return r.String()
}
