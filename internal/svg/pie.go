package svg

import (
	"fmt"
	"math"
	"strings"
)

// PieChart draws a circle split into den equal slices with the first num shaded.
func PieChart(num, den int) string {
	const (
		size = 140
		cx   = 70.0
		cy   = 70.0
		r    = 60.0
	)
	if den < 1 {
		den = 1
	}
	var b strings.Builder
	open(&b, size, size)

	if den == 1 {
		color := "#ffffff"
		if num >= 1 {
			color = "#f59e0b"
		}
		fmt.Fprintf(&b, `<circle cx="%.0f" cy="%.0f" r="%.0f" fill="%s" %s/>`, cx, cy, r, color, stroke)
		b.WriteString(`</svg>`)
		return b.String()
	}

	step := 2 * math.Pi / float64(den)
	for i := range den {
		a0 := -math.Pi/2 + step*float64(i)
		a1 := a0 + step
		x0, y0 := cx+r*math.Cos(a0), cy+r*math.Sin(a0)
		x1, y1 := cx+r*math.Cos(a1), cy+r*math.Sin(a1)
		large := 0
		if step > math.Pi {
			large = 1
		}
		color := "#ffffff"
		if i < num {
			color = "#f59e0b"
		}
		fmt.Fprintf(&b, `<path d="M %.1f %.1f L %.1f %.1f A %.0f %.0f 0 %d 1 %.1f %.1f Z" fill="%s" %s/>`,
			cx, cy, x0, y0, r, r, large, x1, y1, color, stroke)
	}
	b.WriteString(`</svg>`)
	return b.String()
}
