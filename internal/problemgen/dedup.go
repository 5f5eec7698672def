package problemgen

import (
	"fmt"
	"strings"
)

// buildDedup numbers the last limit prior questions, one per line, or
// returns "None".
func buildDedup(prior []string, limit int) string {
	if limit > 0 && len(prior) > limit {
		prior = prior[len(prior)-limit:]
	}
	if len(prior) == 0 {
		return "None"
	}
	lines := make([]string, len(prior))
	for i, q := range prior {
		lines[i] = fmt.Sprintf("%d. %s", i+1, q)
	}
	return strings.Join(lines, "\n")
}

// DedupValidator rejects a question whose text repeats one already on the
// sheet, ignoring case and spacing.
type DedupValidator struct{}

func (v *DedupValidator) Name() string { return "dedup" }

func (v *DedupValidator) Validate(q *Question, input GenerateInput) *ValidationError {
	key := dedupKey(q.Text)
	for _, prior := range input.PriorQuestions {
		if dedupKey(prior) == key {
			return reject(v, "question repeats an earlier one on the sheet")
		}
	}
	return nil
}

func dedupKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
