// Package markup builds the HTML fragments generators put into questions and
// answers, and flattens fragments back to plain text for terminals.
package markup

import (
	"fmt"
	"html"
	"strings"
)

// AttrText marks an element whose plain-text form differs from its content.
// PlainText emits the attribute value instead of descending into the element.
const AttrText = "data-text"

// Text escapes s for use as fragment content.
func Text(s string) string {
	return html.EscapeString(s)
}

// Blank is an underlined gap the student fills in.
func Blank() string {
	return `<span class="blank" data-text="____" style="display:inline-block;min-width:3em;border-bottom:1px solid #000;"></span>`
}

// Box is an empty square answer box.
func Box() string {
	return `<span class="box" data-text="[  ]" style="display:inline-block;width:2.2em;height:2.2em;border:1px solid #000;vertical-align:middle;"></span>`
}

// FilledBox is an answer box showing value.
func FilledBox(value string) string {
	v := Text(value)
	return fmt.Sprintf(`<span class="box" data-text="[%s]" style="display:inline-block;min-width:2.2em;height:2.2em;border:1px solid #000;text-align:center;line-height:2.2em;vertical-align:middle;">%s</span>`, v, v)
}

// Fraction stacks num over den with a rule between them.
func Fraction(num, den string) string {
	n, d := Text(num), Text(den)
	return fmt.Sprintf(`<span class="frac" data-text="%s/%s" style="display:inline-flex;flex-direction:column;align-items:center;vertical-align:middle;margin:0 0.2em;">`+
		`<span>%s</span><span style="border-top:1px solid #000;padding:0 0.2em;">%s</span></span>`, n, d, n, d)
}

// MixedFraction renders a whole part followed by a stacked fraction.
func MixedFraction(whole, num, den string) string {
	return fmt.Sprintf(`<span class="mixed" data-text="%s %s/%s">%s%s</span>`,
		Text(whole), Text(num), Text(den), Text(whole), Fraction(num, den))
}

// Vertical lays operands out as a right-aligned column with the operator on
// the last row and a rule under it, ready for column arithmetic.
func Vertical(op string, operands ...string) string {
	var b strings.Builder
	b.WriteString(`<table class="vertical" style="border-collapse:collapse;font-family:monospace;text-align:right;">`)
	for i, o := range operands {
		sign := ""
		style := ""
		if i == len(operands)-1 {
			sign = Text(op)
			style = ` style="border-bottom:2px solid #000;"`
		}
		fmt.Fprintf(&b, `<tr%s><td style="padding-right:0.4em;">%s</td><td style="letter-spacing:0.3em;">%s</td></tr>`, style, sign, Text(o))
	}
	b.WriteString(`<tr><td></td><td style="height:1.6em;"></td></tr></table>`)
	return b.String()
}

// LongDivision renders dividend and divisor in the bracket layout taught in
// Turkish schools: divisor to the right of the dividend, separated by a bar.
func LongDivision(dividend, divisor string) string {
	return fmt.Sprintf(`<table class="long-division" data-text="%s | %s" style="border-collapse:collapse;font-family:monospace;">`+
		`<tr><td style="padding-right:0.5em;letter-spacing:0.3em;">%s</td>`+
		`<td style="border-left:2px solid #000;border-bottom:2px solid #000;padding-left:0.5em;letter-spacing:0.3em;">%s</td></tr>`+
		`<tr><td style="height:4em;"></td><td></td></tr></table>`,
		Text(dividend), Text(divisor), Text(dividend), Text(divisor))
}

// Row joins items horizontally with a gap.
func Row(items ...string) string {
	return `<div class="row" style="display:flex;gap:0.6em;align-items:center;flex-wrap:wrap;">` + strings.Join(items, " ") + `</div>`
}

// Lines joins items with line breaks.
func Lines(items ...string) string {
	return strings.Join(items, "<br>")
}

// Bold emphasizes s. s is escaped.
func Bold(s string) string {
	return "<b>" + Text(s) + "</b>"
}

// FractionWithBox is a stacked fraction whose numerator (boxOnTop) or
// denominator is an empty answer box.
func FractionWithBox(known string, boxOnTop bool) string {
	k := Text(known)
	num, den, plain := Box(), k, "[ ]/"+k
	if !boxOnTop {
		num, den, plain = k, Box(), k+"/[ ]"
	}
	return fmt.Sprintf(`<span class="frac" data-text="%s" style="display:inline-flex;flex-direction:column;align-items:center;vertical-align:middle;margin:0 0.2em;">`+
		`<span>%s</span><span style="border-top:1px solid #000;padding:0 0.2em;">%s</span></span>`, plain, num, den)
}
