package problemgen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/worksheetz/internal/problem"
)

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		Settings: Settings{Kind: KindRealLife, Grade: 3, Difficulty: problem.Hard},
	}, DefaultConfig())

	assert.Contains(t, msg, "Worksheet: Günlük Hayatta Matematik\n")
	assert.Contains(t, msg, "Grade: 3\n")
	assert.Contains(t, msg, "Difficulty: hard")
	assert.NotContains(t, msg, "Topic:")
	assert.True(t, strings.HasSuffix(msg, "Already on this sheet:\nNone"), msg)

	withTopic := buildUserMessage(GenerateInput{
		Settings: Settings{Kind: KindStoryProblems, Grade: 2, Difficulty: problem.Easy, Topic: "pazar alışverişi"},
	}, DefaultConfig())
	assert.Contains(t, withTopic, "Topic: pazar alışverişi\n")
}

func TestBuildUserMessage_KeepsRecentPriorQuestions(t *testing.T) {
	tests := []struct {
		limit int
		total int
	}{
		{limit: 12, total: 16},
		{limit: 3, total: 5},
		{limit: 12, total: 2},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d of %d", tt.limit, tt.total), func(t *testing.T) {
			prior := make([]string, tt.total)
			for i := range prior {
				prior[i] = fmt.Sprintf("Soru #%02d", i+1)
			}
			cfg := DefaultConfig()
			cfg.MaxPriorQuestions = tt.limit

			msg := buildUserMessage(GenerateInput{Settings: DefaultSettings(), PriorQuestions: prior}, cfg)

			cut := max(tt.total-tt.limit, 0)
			for _, q := range prior[:cut] {
				assert.NotContains(t, msg, q)
			}
			for _, q := range prior[cut:] {
				assert.Contains(t, msg, q)
			}
		})
	}
}

func TestSettingsValidate(t *testing.T) {
	base := Settings{Kind: KindLogic, Grade: 2, Difficulty: problem.Easy}
	with := func(edit func(*Settings)) Settings {
		s := base
		edit(&s)
		return s
	}

	assert.NoError(t, DefaultSettings().Validate())
	assert.NoError(t, base.Validate())

	bad := map[string]Settings{
		"unknown kind":   with(func(s *Settings) { s.Kind = "poetry" }),
		"grade zero":     with(func(s *Settings) { s.Grade = 0 }),
		"grade five":     with(func(s *Settings) { s.Grade = 5 }),
		"bad difficulty": with(func(s *Settings) { s.Difficulty = "extreme" }),
		"long topic":     with(func(s *Settings) { s.Topic = strings.Repeat("x", 201) }),
	}
	for name, s := range bad {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, problem.KindInvalidSettings, problem.KindOf(s.Validate()))
		})
	}
}
