// Package svg renders the figures used on worksheets as inline SVG markup.
package svg

import (
	"fmt"
	"math"
	"strings"
)

// ShapeKind names a plane figure the renderer can draw.
type ShapeKind string

const (
	Square        ShapeKind = "square"
	Rectangle     ShapeKind = "rectangle"
	Triangle      ShapeKind = "triangle"
	Parallelogram ShapeKind = "parallelogram"
	Trapezoid     ShapeKind = "trapezoid"
	Pentagon      ShapeKind = "pentagon"
	Hexagon       ShapeKind = "hexagon"
	Rhombus       ShapeKind = "rhombus"
	Circle        ShapeKind = "circle"
)

// Kinds lists every drawable shape.
var Kinds = []ShapeKind{Square, Rectangle, Triangle, Parallelogram, Trapezoid, Pentagon, Hexagon, Rhombus, Circle}

const (
	width  = 200
	height = 160
	stroke = `stroke="#1f2937" stroke-width="2"`
	fill   = `fill="#e0f2fe"`
)

type point struct{ x, y float64 }

// ShapeOptions controls labels on a figure.
type ShapeOptions struct {
	// SideLabels label edges in drawing order, starting with the top edge.
	// For circles only the first label is used, on the radius.
	SideLabels []string
	// HeightLabel, when set, draws a dashed height for triangles,
	// parallelograms and trapezoids.
	HeightLabel string
}

func regular(n int, cx, cy, r float64) []point {
	pts := make([]point, n)
	for i := range n {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		pts[i] = point{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return pts
}

func vertices(kind ShapeKind) ([]point, bool) {
	switch kind {
	case Square:
		return []point{{50, 30}, {150, 30}, {150, 130}, {50, 130}}, true
	case Rectangle:
		return []point{{25, 45}, {175, 45}, {175, 120}, {25, 120}}, true
	case Triangle:
		return []point{{100, 20}, {175, 135}, {25, 135}}, true
	case Parallelogram:
		return []point{{65, 40}, {180, 40}, {135, 125}, {20, 125}}, true
	case Trapezoid:
		return []point{{65, 40}, {135, 40}, {180, 125}, {20, 125}}, true
	case Rhombus:
		return []point{{100, 15}, {165, 80}, {100, 145}, {35, 80}}, true
	case Pentagon:
		return regular(5, 100, 85, 65), true
	case Hexagon:
		return regular(6, 100, 80, 65), true
	}
	return nil, false
}

// Shape draws kind with the requested labels.
func Shape(kind ShapeKind, opts ShapeOptions) (string, error) {
	if kind == Circle {
		return circle(opts), nil
	}
	pts, ok := vertices(kind)
	if !ok {
		return "", fmt.Errorf("svg: unknown shape %q", kind)
	}

	var b strings.Builder
	open(&b, width, height)
	coords := make([]string, len(pts))
	for i, p := range pts {
		coords[i] = fmt.Sprintf("%.1f,%.1f", p.x, p.y)
	}
	fmt.Fprintf(&b, `<polygon points="%s" %s %s/>`, strings.Join(coords, " "), fill, stroke)

	c := centroid(pts)
	for i, label := range opts.SideLabels {
		if i >= len(pts) || label == "" {
			continue
		}
		a, z := pts[i], pts[(i+1)%len(pts)]
		mid := point{(a.x + z.x) / 2, (a.y + z.y) / 2}
		dx, dy := mid.x-c.x, mid.y-c.y
		d := math.Hypot(dx, dy)
		if d == 0 {
			d = 1
		}
		text(&b, mid.x+dx/d*14, mid.y+dy/d*14+4, label)
	}

	if opts.HeightLabel != "" {
		if top, base, ok := heightLine(kind, pts); ok {
			fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#dc2626" stroke-width="1.5" stroke-dasharray="4 3"/>`,
				top.x, top.y, base.x, base.y)
			text(&b, top.x+12, (top.y+base.y)/2, opts.HeightLabel)
		}
	}
	b.WriteString(`</svg>`)
	return b.String(), nil
}

func heightLine(kind ShapeKind, pts []point) (point, point, bool) {
	switch kind {
	case Triangle:
		return pts[0], point{pts[0].x, pts[1].y}, true
	case Parallelogram, Trapezoid:
		return pts[0], point{pts[0].x, pts[3].y}, true
	}
	return point{}, point{}, false
}

func circle(opts ShapeOptions) string {
	var b strings.Builder
	open(&b, width, height)
	fmt.Fprintf(&b, `<circle cx="100" cy="80" r="65" %s %s/>`, fill, stroke)
	b.WriteString(`<circle cx="100" cy="80" r="2.5" fill="#1f2937"/>`)
	b.WriteString(`<line x1="100" y1="80" x2="165" y2="80" stroke="#dc2626" stroke-width="1.5"/>`)
	if len(opts.SideLabels) > 0 && opts.SideLabels[0] != "" {
		text(&b, 132, 74, opts.SideLabels[0])
	}
	b.WriteString(`</svg>`)
	return b.String()
}

func centroid(pts []point) point {
	var c point
	for _, p := range pts {
		c.x += p.x
		c.y += p.y
	}
	n := float64(len(pts))
	return point{c.x / n, c.y / n}
}

func open(b *strings.Builder, w, h int) {
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, w, h, w, h)
}

func text(b *strings.Builder, x, y float64, s string) {
	fmt.Fprintf(b, `<text x="%.1f" y="%.1f" font-size="13" font-family="sans-serif" text-anchor="middle" fill="#111827">%s</text>`,
		x, y, escape(s))
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string { return escaper.Replace(s) }
