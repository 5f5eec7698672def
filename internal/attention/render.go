package attention

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/worksheetz/internal/markup"
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
)

func (c Candidate) label(mode Mode) string {
	if mode == Verbal {
		return c.Word
	}
	return strconv.Itoa(c.Value)
}

// Render draws both boxes side by side followed by the numbered clues.
func Render(p Puzzle) problem.Problem {
	var b strings.Builder
	b.WriteString(`<div class="attention" style="display:flex;gap:2em;">`)
	for i, box := range p.Containers {
		fmt.Fprintf(&b, `<div class="container" style="border:2px solid #1f2937;border-radius:8px;padding:0.5em 1em;"><b>%s</b>`, BoxNames[i])
		for _, c := range box {
			b.WriteString("<div>" + markup.Text(c.label(p.Mode)) + "</div>")
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)

	clues := make([]string, len(p.Clues))
	for i, cl := range p.Clues {
		clues[i] = markup.Text(fmt.Sprintf("%d. %s", i+1, cl.Text))
	}
	ask := "Ben hangi sayıyım?"
	if p.Mode == Verbal {
		ask = "Ben hangi kelimeyim?"
	}
	b.WriteString(markup.Lines(clues...))
	b.WriteString("<br>" + markup.Bold(ask))

	return problem.Problem{
		Question: b.String(),
		Answer:   p.Answer.label(p.Mode),
		Category: problem.CategoryAttention,
		Display:  problem.DisplayInline,
	}
}

func Generate(src *random.Source, s Settings) problem.Result {
	title := "Dikkat Soruları"
	if s.Mode == Verbal {
		title = "Sözel Dikkat Soruları"
	}
	p, err := Draw(src, s)
	if err != nil {
		return problem.Fail(title, problem.CategoryAttention, err)
	}
	return problem.OK(Render(p), title)
}
