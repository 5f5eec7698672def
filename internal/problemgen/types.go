package problemgen

import "github.com/abhisek/worksheetz/internal/problem"

// Question represents a generated question ready for a worksheet.
type Question struct {
	// Text is the question prompt, in Turkish plain text, e.g.
	// "Ayşe'nin 12 kalemi var. 5 tanesini kardeşine verirse kaç kalemi kalır?"
	Text string

	// Format indicates how the student answers this question.
	Format AnswerFormat

	// Answer is the canonical correct answer as a string.
	// For numeric: "623", "0.75", "3/4"
	// For multiple choice: the text of the correct option.
	Answer string

	// AnswerType describes the type of the answer for validation.
	AnswerType AnswerType

	// Choices is populated only when Format is FormatMultipleChoice.
	// Contains exactly 4 options, one of which matches Answer.
	Choices []string

	// Difficulty is the LLM's self-assessed difficulty (1-5).
	Difficulty int

	// Explanation is a brief worked solution for the answer key.
	Explanation string
}

// AnswerType describes the representation of the correct answer.
type AnswerType string

const (
	AnswerTypeInteger  AnswerType = "integer"  // e.g. "623", "-15"
	AnswerTypeDecimal  AnswerType = "decimal"  // e.g. "3.75", "0.5"
	AnswerTypeFraction AnswerType = "fraction" // e.g. "3/4", "7/2"
	AnswerTypeText     AnswerType = "text"     // e.g. "Pazartesi"; multiple choice only
)

// AnswerFormat describes how the student provides their answer.
type AnswerFormat string

const (
	// FormatNumeric means the student writes a number.
	FormatNumeric AnswerFormat = "numeric"

	// FormatMultipleChoice means the student picks from 4 choices.
	FormatMultipleChoice AnswerFormat = "multiple_choice"
)

// Kind is an AI-backed worksheet sub-module.
type Kind string

const (
	KindStoryProblems Kind = "story-problems"
	KindRealLife      Kind = "real-life"
	KindLogic         Kind = "logic"
)

var kinds = map[Kind]struct {
	title  string
	prompt string
}{
	KindStoryProblems: {"Hikâyeli Problemler", "Short story problems solved with one or two arithmetic operations."},
	KindRealLife:      {"Günlük Hayatta Matematik", "Everyday situations: shopping with Turkish lira, recipes, travel times, sharing."},
	KindLogic:         {"Mantık Soruları", "Reasoning puzzles: ordering, patterns, who-is-where, simple deduction."},
}

// Kinds lists every sub-module.
var Kinds = []Kind{KindStoryProblems, KindRealLife, KindLogic}

// Settings configures an AI-backed worksheet section.
type Settings struct {
	Kind       Kind               `json:"kind"`
	Grade      int                `json:"grade"`
	Topic      string             `json:"topic,omitempty"`
	Difficulty problem.Difficulty `json:"difficulty"`
}

func DefaultSettings() Settings {
	return Settings{Kind: KindStoryProblems, Grade: 2, Difficulty: problem.Easy}
}

func (s Settings) Validate() error {
	if _, ok := kinds[s.Kind]; !ok {
		return problem.InvalidSettings("unknown AI worksheet kind %q", s.Kind)
	}
	if s.Grade < 1 || s.Grade > 4 {
		return problem.InvalidSettings("grade must be between 1 and 4, got %d", s.Grade)
	}
	if !s.Difficulty.Valid() {
		return problem.InvalidSettings("unknown difficulty %q", s.Difficulty)
	}
	if len(s.Topic) > 200 {
		return problem.InvalidSettings("topic exceeds 200 characters")
	}
	return nil
}

// Title is the worksheet heading for s.Kind.
func (s Settings) Title() string {
	return kinds[s.Kind].title
}

// GenerateInput holds all context needed to generate a question.
type GenerateInput struct {
	Settings Settings

	// PriorQuestions contains the Text of questions already on this sheet.
	// Used for deduplication in the prompt and by the dedup validator.
	PriorQuestions []string
}

// Sheet is a generated set of questions under one title.
type Sheet struct {
	Title     string
	Questions []*Question
}
