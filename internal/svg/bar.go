package svg

import (
	"fmt"
	"strings"
)

// BarGraph draws one vertical bar per value with a unit grid up to the
// largest value. labels are printed under the bars and may be emoji.
func BarGraph(labels []string, values []int) string {
	const (
		unit   = 22
		barW   = 34
		gap    = 18
		left   = 30
		bottom = 34
		top    = 10
	)
	maxV := 1
	for _, v := range values {
		maxV = max(maxV, v)
	}
	w := left + len(values)*(barW+gap) + gap
	h := top + maxV*unit + bottom
	base := h - bottom

	var b strings.Builder
	open(&b, w, h)
	for i := 0; i <= maxV; i++ {
		y := base - i*unit
		fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#d1d5db" stroke-width="1"/>`, left, y, w-4, y)
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="11" font-family="sans-serif" text-anchor="end" fill="#374151">%d</text>`, left-6, y+4, i)
	}
	for i, v := range values {
		x := left + gap + i*(barW+gap)
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="#60a5fa" %s/>`, x, base-v*unit, barW, v*unit, stroke)
		if i < len(labels) {
			fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="18" text-anchor="middle">%s</text>`, x+barW/2, base+24, escape(labels[i]))
		}
	}
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" %s/>`, left, top, left, base, stroke)
	b.WriteString(`</svg>`)
	return b.String()
}
