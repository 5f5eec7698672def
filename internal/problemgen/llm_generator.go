package problemgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/worksheetz/internal/llm"
)

// LLMGenerator asks an llm.Provider for one question at a time and runs
// the configured validators on each answer.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

var _ Generator = (*LLMGenerator)(nil)

func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg.withDefaults()}
}

// questionOutput mirrors QuestionSchema.
type questionOutput struct {
	QuestionText string   `json:"question_text"`
	Format       string   `json:"format"`
	Answer       string   `json:"answer"`
	AnswerType   string   `json:"answer_type"`
	Choices      []string `json:"choices"`
	Difficulty   int      `json:"difficulty"`
	Explanation  string   `json:"explanation"`
}

func (o questionOutput) question() *Question {
	return &Question{
		Text:        o.QuestionText,
		Format:      AnswerFormat(o.Format),
		Answer:      o.Answer,
		AnswerType:  AnswerType(o.AnswerType),
		Choices:     o.Choices,
		Difficulty:  o.Difficulty,
		Explanation: o.Explanation,
	}
}

// Generate returns one validated question. Rejections come back as
// *ValidationError; provider failures are wrapped.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	if err := input.Settings.Validate(); err != nil {
		return nil, err
	}

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, llm.PurposeWorksheet), llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)}},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var out questionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("decode question: %w", err)
	}
	q := out.question()
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}
	return q, nil
}

// GenerateSheet fills count slots in order, quoting accepted questions in
// later prompts. A slot whose question is rejected with a retryable error
// is asked again up to MaxRetries times. On failure the questions accepted
// so far are returned along with the error.
func (g *LLMGenerator) GenerateSheet(ctx context.Context, s Settings, count int) (*Sheet, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	sheet := &Sheet{Title: s.Title()}
	var prior []string

	for slot := 1; slot <= count; slot++ {
		q, err := g.fill(ctx, GenerateInput{Settings: s, PriorQuestions: prior})
		if err != nil {
			return sheet, fmt.Errorf("question %d: %w", slot, err)
		}
		sheet.Questions = append(sheet.Questions, q)
		prior = append(prior, q.Text)
	}
	return sheet, nil
}

func (g *LLMGenerator) fill(ctx context.Context, input GenerateInput) (*Question, error) {
	var err error
	for range g.config.MaxRetries + 1 {
		var q *Question
		if q, err = g.Generate(ctx, input); err == nil {
			return q, nil
		}
		var verr *ValidationError
		if !errors.As(err, &verr) || !verr.Retryable {
			return nil, err
		}
	}
	return nil, err
}
