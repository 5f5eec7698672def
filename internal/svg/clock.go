package svg

import (
	"fmt"
	"math"
	"strings"
)

// ClockOptions selects which parts of the clock face are drawn. Hiding the
// hands turns a read-the-time figure into a draw-the-time exercise.
type ClockOptions struct {
	ShowNumbers bool
	ShowHands   bool
}

// Clock draws an analog clock face showing hour:minute.
func Clock(hour, minute int, opts ClockOptions) string {
	const (
		size = 180
		c    = 90.0
		r    = 80.0
	)
	var b strings.Builder
	open(&b, size, size)
	fmt.Fprintf(&b, `<circle cx="%.0f" cy="%.0f" r="%.0f" fill="#ffffff" stroke="#1f2937" stroke-width="3"/>`, c, c, r)

	for i := range 60 {
		inner, w := r-5, 1.0
		if i%5 == 0 {
			inner, w = r-11, 2.5
		}
		a := float64(i) * 6
		x0, y0 := polar(c, c, inner, a)
		x1, y1 := polar(c, c, r-1, a)
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#1f2937" stroke-width="%.1f"/>`, x0, y0, x1, y1, w)
	}

	if opts.ShowNumbers {
		for n := 1; n <= 12; n++ {
			x, y := polar(c, c, r-24, float64(n)*30)
			fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="14" font-family="sans-serif" text-anchor="middle" dominant-baseline="central" fill="#111827">%d</text>`, x, y, n)
		}
	}

	if opts.ShowHands {
		hourAngle := (float64(hour%12) + float64(minute)/60) * 30
		minuteAngle := float64(minute%60) * 6
		hx, hy := polar(c, c, r*0.5, hourAngle)
		mx, my := polar(c, c, r*0.78, minuteAngle)
		fmt.Fprintf(&b, `<line class="hour-hand" x1="%.0f" y1="%.0f" x2="%.1f" y2="%.1f" stroke="#1f2937" stroke-width="5" stroke-linecap="round"/>`, c, c, hx, hy)
		fmt.Fprintf(&b, `<line class="minute-hand" x1="%.0f" y1="%.0f" x2="%.1f" y2="%.1f" stroke="#2563eb" stroke-width="3" stroke-linecap="round"/>`, c, c, mx, my)
	}
	fmt.Fprintf(&b, `<circle cx="%.0f" cy="%.0f" r="4" fill="#1f2937"/>`, c, c)
	b.WriteString(`</svg>`)
	return b.String()
}

// polar converts a clockwise angle in degrees from twelve o'clock.
func polar(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Sin(rad), cy - r*math.Cos(rad)
}
