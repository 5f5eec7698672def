package problemgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You write printable math worksheets for primary school children in Turkey (grades 1-4).

Rules:
- Write the question and the explanation in Turkish, using names, places, foods and money (TL) familiar to Turkish children.
- Generate a single problem appropriate for the given worksheet kind, grade and difficulty.
- Use plain text for all math. No LaTeX. Use / for fractions, × or * for multiplication, and standard operators.
- The question must be self-contained and solvable with pencil and paper.
- The answer must be correct and in the simplest form (reduce fractions, no trailing zeros on decimals). Write decimal answers with "." as the decimal point.
- The explanation should show the solution step by step, suitable for a child.
- Choose "numeric" format when the answer is a number the student writes.
- Choose "multiple_choice" format for reasoning or identification problems, with exactly 4 options where exactly one is correct. Distractors should reflect common mistakes, not random values.
- Do not repeat any question from the "already on this sheet" list.`

// difficultyLabels maps difficulty to the wording used in the prompt.
var difficultyLabels = map[string]string{
	"easy":   "easy (one step, small numbers)",
	"medium": "medium (one or two steps)",
	"hard":   "hard (two or three steps, larger numbers)",
}

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	s := input.Settings
	var b strings.Builder

	fmt.Fprintf(&b, "Worksheet: %s\n", s.Title())
	fmt.Fprintf(&b, "Kind: %s\n", kinds[s.Kind].prompt)
	fmt.Fprintf(&b, "Grade: %d\n", s.Grade)
	fmt.Fprintf(&b, "Difficulty: %s\n", difficultyLabels[string(s.Difficulty)])
	if s.Topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n", s.Topic)
	}

	b.WriteString("\nAlready on this sheet:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}
