package problemgen

import (
	"github.com/abhisek/worksheetz/internal/markup"
	"github.com/abhisek/worksheetz/internal/problem"
)

// Render turns a validated question into a worksheet problem. Choices are
// listed one per line under the question.
func Render(q *Question) problem.Problem {
	question := markup.Text(q.Text)
	if q.Format == FormatMultipleChoice {
		lines := []string{question}
		for i, c := range q.Choices {
			if i >= len(optionLetters) {
				break
			}
			lines = append(lines, markup.Text(optionLetters[i]+") "+displayNumber(c, q.AnswerType)))
		}
		question = markup.Lines(lines...)
	} else {
		question = markup.Lines(question, markup.Blank())
	}
	return problem.Problem{
		Question: question,
		Answer:   DisplayAnswer(q),
		Category: problem.CategoryAI,
		Display:  problem.DisplayInline,
	}
}
