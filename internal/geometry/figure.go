// Package geometry generates perimeter and area problems with figures, and
// recognition and element-counting questions about shapes and solids.
package geometry

import (
	"strconv"

	"github.com/abhisek/worksheetz/internal/random"
	"github.com/abhisek/worksheetz/internal/svg"
)

// Pi is the value of π used in circle problems.
const Pi = 3

// Figure is a drawn plane figure with integer measures in centimetres.
//
// Sides holds edge lengths in drawing order: square, pentagon, hexagon and
// rhombus use one side; rectangle and parallelogram use two; triangle uses
// three; trapezoid uses top, right, bottom and left.
type Figure struct {
	Kind   svg.ShapeKind
	Sides  []int
	Radius int
	// Height is the height on the base for triangle, parallelogram and trapezoid areas.
	Height int
}

// HasArea reports whether an area problem can be posed for kind with the
// measures shown on a figure.
func HasArea(kind svg.ShapeKind) bool {
	switch kind {
	case svg.Pentagon, svg.Hexagon, svg.Rhombus:
		return false
	}
	return true
}

// Perimeter is the sum of the sides, or 2πr with π = 3 for circles.
func (f Figure) Perimeter() int {
	s := f.Sides
	switch f.Kind {
	case svg.Square, svg.Rhombus:
		return 4 * s[0]
	case svg.Pentagon:
		return 5 * s[0]
	case svg.Hexagon:
		return 6 * s[0]
	case svg.Rectangle, svg.Parallelogram:
		return 2 * (s[0] + s[1])
	case svg.Circle:
		return 2 * Pi * f.Radius
	}
	sum := 0
	for _, v := range s {
		sum += v
	}
	return sum
}

// Area returns the area and whether the figure supports it.
func (f Figure) Area() (int, bool) {
	s := f.Sides
	switch f.Kind {
	case svg.Square:
		return s[0] * s[0], true
	case svg.Rectangle:
		return s[0] * s[1], true
	case svg.Triangle:
		return s[1] * f.Height / 2, true
	case svg.Parallelogram:
		return s[0] * f.Height, true
	case svg.Trapezoid:
		return (s[0] + s[2]) * f.Height / 2, true
	case svg.Circle:
		return Pi * f.Radius * f.Radius, true
	}
	return 0, false
}

func sizeRange(hard, medium bool) (int, int) {
	switch {
	case hard:
		return 10, 50
	case medium:
		return 5, 20
	}
	return 2, 10
}

// drawFigure picks measures for kind. For area figures the products that are
// halved are kept even so answers stay whole.
func drawFigure(src *random.Source, kind svg.ShapeKind, lo, hi int, forArea bool) Figure {
	f := Figure{Kind: kind}
	side := func() int { return src.Int(lo, hi) }

	switch kind {
	case svg.Square, svg.Pentagon, svg.Hexagon, svg.Rhombus:
		f.Sides = []int{side()}
	case svg.Rectangle:
		a := src.Int(lo+1, hi)
		f.Sides = []int{a, src.Int(lo, a-1)}
	case svg.Parallelogram:
		a, b := side(), side()
		f.Sides = []int{a, b}
		if forArea {
			f.Height = src.Int(max(1, b/2), max(1, b-1))
		}
	case svg.Triangle:
		if !forArea {
			a, b := side(), side()
			c := src.Int(max(lo, absInt(a-b)+1), a+b-1)
			f.Sides = []int{a, b, c}
			break
		}
		// the base is Sides[1]; the slanted sides bound the height
		a, c := src.Int(max(lo, 3), hi), src.Int(max(lo, 3), hi)
		b := src.Int(max(lo, absInt(a-c)+1), a+c-1)
		f.Sides = []int{a, b, c}
		f.Height = heightBelow(src, min(a, c)-1, b)
	case svg.Trapezoid:
		top := side()
		bottom := top + src.Int(2, max(2, hi-lo))
		legLo := (bottom-top)/2 + 1
		if forArea {
			legLo = max(legLo, 3)
		}
		f.Sides = []int{top, src.Int(legLo, legLo+hi/2), bottom, src.Int(legLo, legLo+hi/2)}
		if forArea {
			f.Height = heightBelow(src, min(f.Sides[1], f.Sides[3])-1, top+bottom)
		}
	case svg.Circle:
		f.Radius = side()
	}
	return f
}

// heightBelow draws a height in [1, limit] such that factor*height is even.
// limit must be at least 2.
func heightBelow(src *random.Source, limit, factor int) int {
	h := src.Int(max(1, limit/2), limit)
	if factor*h%2 != 0 {
		if h > 1 {
			h--
		} else {
			h = 2
		}
	}
	return h
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func cm(v int) string { return strconv.Itoa(v) + " cm" }

// labels places measures on the figure edges. Area figures show only the
// base and height the formula needs.
func (f Figure) labels(forArea bool) svg.ShapeOptions {
	s := f.Sides
	switch f.Kind {
	case svg.Circle:
		return svg.ShapeOptions{SideLabels: []string{"r = " + cm(f.Radius)}}
	case svg.Rectangle:
		return svg.ShapeOptions{SideLabels: []string{cm(s[0]), cm(s[1])}}
	case svg.Triangle:
		if forArea {
			return svg.ShapeOptions{SideLabels: []string{"", cm(s[1])}, HeightLabel: "h = " + cm(f.Height)}
		}
		return svg.ShapeOptions{SideLabels: []string{cm(s[0]), cm(s[1]), cm(s[2])}}
	case svg.Parallelogram:
		if forArea {
			return svg.ShapeOptions{SideLabels: []string{"", "", cm(s[0])}, HeightLabel: "h = " + cm(f.Height)}
		}
		return svg.ShapeOptions{SideLabels: []string{cm(s[0]), cm(s[1])}}
	case svg.Trapezoid:
		if forArea {
			return svg.ShapeOptions{SideLabels: []string{cm(s[0]), "", cm(s[2])}, HeightLabel: "h = " + cm(f.Height)}
		}
		return svg.ShapeOptions{SideLabels: []string{cm(s[0]), cm(s[1]), cm(s[2]), cm(s[3])}}
	}
	return svg.ShapeOptions{SideLabels: []string{cm(s[0])}}
}
