package problemgen

import "github.com/abhisek/worksheetz/internal/llm"

func field(typ, desc string) map[string]any {
	return map[string]any{"type": typ, "description": desc}
}

func enumField(desc string, values ...string) map[string]any {
	f := field("string", desc)
	f["enum"] = values
	return f
}

func enumValues[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

// QuestionSchema is the structured output requested for every question.
// Its enums follow knownFormats and knownAnswerTypes.
var QuestionSchema = &llm.Schema{
	Name:        "worksheet-question",
	Description: "One Turkish worksheet question with its answer and a worked solution",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": field("string", "The question as printed on the sheet, Turkish plain text"),
			"format": enumField("numeric: the pupil writes the answer; multiple_choice: the pupil picks one of four options",
				enumValues(knownFormats)...),
			"answer": field("string", "The correct answer in canonical form, '.' as decimal point, a/b in lowest terms for fractions; for multiple_choice the text of the correct option"),
			"answer_type": enumField("Type of the answer; text only with multiple_choice",
				enumValues(knownAnswerTypes)...),
			"choices": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Four distinct options for multiple_choice, empty for numeric",
			},
			"difficulty": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "1 (easy) to 5 (hard)",
			},
			"explanation": field("string", "Worked solution in Turkish for the answer key"),
		},
		"required":             []string{"question_text", "format", "answer", "answer_type", "choices", "difficulty", "explanation"},
		"additionalProperties": false,
	},
}
