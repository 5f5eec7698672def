package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// figure stands in for SVG drawings in plain-text output.
const figure = "[şekil]"

var blockTags = map[string]bool{
	"br": true, "div": true, "p": true, "tr": true, "li": true, "table": true,
}

// PlainText flattens a fragment to readable text. Elements that carry a
// data-text attribute print that value, SVG drawings print a placeholder and
// block elements start a new line.
func PlainText(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	skip := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return tidy(b.String())

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if skip > 0 {
				if tt == html.StartTagToken && !isVoid(tok.Data) {
					skip++
				}
				continue
			}
			if blockTags[tok.Data] {
				b.WriteByte('\n')
			}
			if tok.Data == "td" {
				b.WriteByte(' ')
			}
			replacement, ok := attr(tok, AttrText)
			if tok.Data == "svg" {
				replacement, ok = figure, true
			}
			if ok {
				b.WriteString(replacement)
				if tt == html.StartTagToken && !isVoid(tok.Data) {
					skip = 1
				}
			}

		case html.EndTagToken:
			if skip > 0 {
				skip--
				continue
			}
			if name, _ := z.TagName(); blockTags[string(name)] {
				b.WriteByte('\n')
			}

		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func attr(tok html.Token, key string) (string, bool) {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func isVoid(tag string) bool {
	switch tag {
	case "br", "img", "hr", "input", "meta", "link":
		return true
	}
	return false
}

// tidy collapses runs of spaces inside lines and drops empty lines.
func tidy(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if f := strings.Fields(line); len(f) > 0 {
			lines = append(lines, strings.Join(f, " "))
		}
	}
	return strings.Join(lines, "\n")
}
