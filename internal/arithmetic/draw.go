package arithmetic

import (
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
)

// Instance is a drawn problem before rendering.
type Instance struct {
	Op Operation
	A  int
	B  int
	// Result is the sum, difference, product or quotient.
	Result    int
	Remainder int
	// RegroupColumn is the digit column (0 = ones) chosen to carry or
	// borrow, or -1 when the problem has none.
	RegroupColumn int
}

var pow10 = [...]int{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000}

// leadLow is the smallest digit allowed at column i of a d-digit number.
func leadLow(i, d int) int {
	if i == d-1 {
		return 1
	}
	return 0
}

// digitRange spans every d-digit number.
func digitRange(d int) (int, int) {
	if d == 1 {
		return 1, 9
	}
	return pow10[d-1], pow10[d] - 1
}

// factorRange is digitRange without the trivial factors 0 and 1.
func factorRange(d int) (int, int) {
	if d == 1 {
		return 2, 9
	}
	return digitRange(d)
}

func borrowFeasible(d1, d2 int) bool {
	top, bottom := max(d1, d2), min(d1, d2)
	return top > bottom || bottom >= 2
}

// Draw picks operands for s. Mixed settings resolve to one concrete operation.
func Draw(src *random.Source, s Settings) (Instance, error) {
	if err := s.Validate(); err != nil {
		return Instance{}, err
	}
	op := s.Operation
	if op == Mixed {
		op = random.Pick(src, []Operation{Addition, Subtraction, Multiplication, Division})
		if op == Division && s.Digits2 > s.Digits1 {
			op = Multiplication
		}
	}

	switch op {
	case Addition:
		carry := s.CarryBorrow == WithRegrouping || (s.CarryBorrow == RandomRegrouping && src.Bool())
		return drawAddition(src, s.Digits1, s.Digits2, carry), nil

	case Subtraction:
		borrow := s.CarryBorrow == WithRegrouping ||
			(s.CarryBorrow == RandomRegrouping && borrowFeasible(s.Digits1, s.Digits2) && src.Bool())
		return retry(s, func() (Instance, bool) {
			inst := drawSubtraction(src, s.Digits1, s.Digits2, borrow)
			return inst, inst.Result != 0
		})

	case Multiplication:
		loA, hiA := factorRange(s.Digits1)
		loB, hiB := factorRange(s.Digits2)
		a, b := src.Int(loA, hiA), src.Int(loB, hiB)
		return Instance{Op: Multiplication, A: a, B: b, Result: a * b, RegroupColumn: -1}, nil

	default:
		if s.DivisionType == WithRemainder {
			return retry(s, func() (Instance, bool) { return drawRemainderDivision(src, s.Digits1, s.Digits2) })
		}
		return retry(s, func() (Instance, bool) { return drawExactDivision(src, s.Digits1, s.Digits2) })
	}
}

func retry(s Settings, attempt func() (Instance, bool)) (Instance, error) {
	var err error
	inst := problem.Retry(s.MaxAttempts, func(int) (Instance, bool) { return attempt() },
		func(e error) Instance { err = e; return Instance{} })
	return inst, err
}

// drawAddition builds both operands column by column from the ones digit.
// With carry, one shared column sums to at least 10 and every other column
// stays at most 9 including the carry it receives.
func drawAddition(src *random.Source, d1, d2 int, carry bool) Instance {
	col := -1
	if carry {
		col = src.Int(0, min(d1, d2)-1)
	}

	var a, b int
	for i := range max(d1, d2) {
		inA, inB := i < d1, i < d2
		loA, loB := leadLow(i, d1), leadLow(i, d2)
		incoming := 0
		if col >= 0 && i == col+1 {
			incoming = 1
		}

		var da, db int
		switch {
		case inA && inB && i == col:
			da = src.Int(max(loA, 1), 9)
			db = src.Int(max(loB, 10-da), 9)
		case inA && inB:
			limit := 9 - incoming
			da = src.Int(loA, limit-loB)
			db = src.Int(loB, limit-da)
		case inA:
			da = src.Int(loA, 9-incoming)
		default:
			db = src.Int(loB, 9-incoming)
		}
		a += da * pow10[i]
		b += db * pow10[i]
	}
	return Instance{Op: Addition, A: a, B: b, Result: a + b, RegroupColumn: col}
}

// drawSubtraction builds the minuend from the longer digit count. With borrow,
// one shared column has a smaller top digit and the column above it keeps a
// top digit strictly larger than its bottom digit so no second borrow occurs.
func drawSubtraction(src *random.Source, d1, d2 int, borrow bool) Instance {
	top, bottom := max(d1, d2), min(d1, d2)
	col := -1
	if borrow && borrowFeasible(d1, d2) {
		hi := bottom - 1
		if top == bottom {
			hi = bottom - 2
		}
		col = src.Int(0, hi)
	}

	var a, b int
	for i := range top {
		loT, loB := leadLow(i, top), leadLow(i, bottom)
		var dt, db int
		switch {
		case i < bottom && i == col:
			dt = src.Int(loT, 8)
			db = src.Int(max(loB, dt+1), 9)
		case i < bottom && col >= 0 && i == col+1:
			dt = src.Int(max(loT, loB+1), 9)
			db = src.Int(loB, dt-1)
		case i < bottom:
			dt = src.Int(max(loT, loB), 9)
			db = src.Int(loB, dt)
		case col >= 0 && i == col+1:
			dt = src.Int(max(loT, 1), 9)
		default:
			dt = src.Int(loT, 9)
		}
		a += dt * pow10[i]
		b += db * pow10[i]
	}
	return Instance{Op: Subtraction, A: a, B: b, Result: a - b, RegroupColumn: col}
}

// drawExactDivision picks the divisor, then a quotient that keeps the
// product at the dividend's digit count.
func drawExactDivision(src *random.Source, d1, d2 int) (Instance, bool) {
	lo, hi := digitRange(d1)
	divisor := src.Int(factorRange(d2))
	qlo := max((lo+divisor-1)/divisor, 2)
	qhi := hi / divisor
	if qlo > qhi {
		return Instance{}, false
	}
	q := src.Int(qlo, qhi)
	return Instance{Op: Division, A: q * divisor, B: divisor, Result: q, RegroupColumn: -1}, true
}

// drawRemainderDivision draws the dividend directly and nudges it by one
// when it happens to divide exactly.
func drawRemainderDivision(src *random.Source, d1, d2 int) (Instance, bool) {
	lo, hi := digitRange(d1)
	divisor := src.Int(factorRange(d2))
	lo = max(lo, divisor+1)
	if lo > hi {
		return Instance{}, false
	}
	dividend := src.Int(lo, hi)
	if dividend%divisor == 0 {
		if dividend+1 <= hi {
			dividend++
		} else {
			dividend--
		}
	}
	return Instance{
		Op: Division, A: dividend, B: divisor,
		Result: dividend / divisor, Remainder: dividend % divisor,
		RegroupColumn: -1,
	}, true
}
