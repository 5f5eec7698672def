package problemgen

// Config tunes the LLM generator. Zero fields take the values from
// DefaultConfig when passed to New.
type Config struct {
	// Validators run in order on every question; the first failure wins.
	Validators []Validator

	MaxTokens   int
	Temperature float64

	// MaxPriorQuestions caps how many earlier questions are quoted in the
	// prompt. Older ones are dropped first.
	MaxPriorQuestions int

	// MaxRetries is how often GenerateSheet asks again for one slot after
	// a retryable rejection.
	MaxRetries int
}

func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&AnswerFormatValidator{},
			&MathCheckValidator{},
			&DedupValidator{},
		},
		MaxTokens:         768,
		Temperature:       0.8,
		MaxPriorQuestions: 12,
		MaxRetries:        2,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Validators == nil {
		c.Validators = d.Validators
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = d.MaxTokens
	}
	if c.MaxPriorQuestions <= 0 {
		c.MaxPriorQuestions = d.MaxPriorQuestions
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	return c
}
