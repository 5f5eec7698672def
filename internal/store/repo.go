package store

import (
	"context"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// QueryOpts configures event queries with filtering and pagination.
// Results are returned newest first.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	Module string    // generation events only
}

func (o QueryOpts) apply(sel *entsql.Selector) *entsql.Selector {
	var ps []*entsql.Predicate
	if o.After > 0 {
		ps = append(ps, entsql.GT(colSequence, o.After))
	}
	if o.Before > 0 {
		ps = append(ps, entsql.LT(colSequence, o.Before))
	}
	if !o.From.IsZero() {
		ps = append(ps, entsql.GTE(colTimestamp, o.From))
	}
	if !o.To.IsZero() {
		ps = append(ps, entsql.LTE(colTimestamp, o.To))
	}
	if len(ps) > 0 {
		sel.Where(entsql.And(ps...))
	}
	sel.OrderBy(entsql.Desc(colSequence))
	if o.Limit > 0 {
		sel.Limit(o.Limit)
	}
	return sel
}

// GenerationEventData captures one worksheet batch.
type GenerationEventData struct {
	BatchID      string
	Module       string
	Title        string
	Seed         uint64
	Count        int
	Failed       int
	ErrorKind    string
	ErrorMessage string
	LatencyMs    int64
	// Settings is the JSON of the settings the batch was generated with.
	Settings string
}

// GenerationEvent is a stored GenerationEventData.
type GenerationEvent struct {
	Sequence  int64
	Timestamp time.Time
	GenerationEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLMRequestEventData.
type LLMRequestEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendGeneration records a generated batch.
	AppendGeneration(ctx context.Context, data GenerationEventData) error

	// QueryGenerations lists generation events matching opts.
	QueryGenerations(ctx context.Context, opts QueryOpts) ([]GenerationEvent, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMRequests lists LLM request events matching opts.
	QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMRequest returns the LLM request event with the given sequence,
	// or nil if there is none.
	GetLLMRequest(ctx context.Context, seq int64) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates LLM calls per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]Usage, error)

	// LLMUsageByModel aggregates LLM calls per model.
	LLMUsageByModel(ctx context.Context) ([]Usage, error)

	// GenerationsByModule aggregates generation events per module.
	GenerationsByModule(ctx context.Context) ([]ModuleUsage, error)
}

// Usage is an aggregate over LLM request events sharing Key.
type Usage struct {
	Key          string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModuleUsage is an aggregate over generation events for one module.
type ModuleUsage struct {
	Module   string
	Batches  int
	Problems int
	Failed   int
}
