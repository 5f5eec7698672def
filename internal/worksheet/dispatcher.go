package worksheet

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/worksheetz/internal/mapreading"
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/problemgen"
	"github.com/abhisek/worksheetz/internal/random"
	"github.com/abhisek/worksheetz/internal/store"
)

// TextGenerator produces AI-written questions for a sub-module.
type TextGenerator interface {
	GenerateSheet(ctx context.Context, s problemgen.Settings, count int) (*problemgen.Sheet, error)
}

// EventRecorder receives one event per generated batch.
type EventRecorder interface {
	AppendGeneration(ctx context.Context, data store.GenerationEventData) error
}

// Limits bound batch sizes and retry loops.
type Limits struct {
	MaxAttempts  int
	DefaultCount int
	MaxCount     int
	Concurrency  int
}

// DefaultLimits matches the configuration defaults.
func DefaultLimits() Limits {
	return Limits{
		MaxAttempts:  problem.DefaultMaxAttempts,
		DefaultCount: 10,
		MaxCount:     100,
		Concurrency:  4,
	}
}

// Dispatcher runs generators on behalf of callers that must never see a
// panic or a Go error: every failure comes back inside the Batch.
type Dispatcher struct {
	limits Limits
	log    *zap.Logger
	ai     TextGenerator
	fitter PageFitter
	events EventRecorder
}

type Option func(*Dispatcher)

// WithTextGenerator enables the AI module.
func WithTextGenerator(g TextGenerator) Option {
	return func(d *Dispatcher) { d.ai = g }
}

// WithPageFitter replaces DefaultFitter.
func WithPageFitter(f PageFitter) Option {
	return func(d *Dispatcher) { d.fitter = f }
}

// WithEventRecorder records every batch.
func WithEventRecorder(r EventRecorder) Option {
	return func(d *Dispatcher) { d.events = r }
}

func NewDispatcher(limits Limits, log *zap.Logger, opts ...Option) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	def := DefaultLimits()
	if limits.MaxAttempts <= 0 {
		limits.MaxAttempts = def.MaxAttempts
	}
	if limits.MaxCount <= 0 {
		limits.MaxCount = def.MaxCount
	}
	if limits.DefaultCount <= 0 {
		limits.DefaultCount = min(def.DefaultCount, limits.MaxCount)
	}
	if limits.Concurrency <= 0 {
		limits.Concurrency = def.Concurrency
	}
	d := &Dispatcher{limits: limits, log: log, fitter: DefaultFitter}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Generate produces one batch for req. Problem i is drawn from a source
// derived from the batch seed and i, so the same seed replays the batch.
func (d *Dispatcher) Generate(ctx context.Context, req Request) (batch problem.Batch) {
	start := time.Now()
	seed := req.Seed
	if seed == 0 {
		seed = random.NewSeed()
	}
	batch = problem.Batch{ID: uuid.NewString(), Module: string(req.Module), Seed: seed}

	defer func() { d.record(ctx, req, batch, time.Since(start)) }()
	defer func() {
		if v := recover(); v != nil {
			err := d.panicError(ctx, req.Module, seed, v)
			batch.Problems = append(batch.Problems, problem.Fail(batch.Title, problem.CategoryError, err).Problem)
			if batch.Err == nil {
				batch.Err = err
			}
		}
	}()

	info, ok := Lookup(req.Module)
	if !ok {
		err := &problem.Error{Kind: problem.KindInvalidSettings, Module: string(req.Module), Message: "unknown module"}
		batch.Problems = []problem.Problem{problem.Fail("", problem.CategoryError, err).Problem}
		batch.Err = err
		return batch
	}
	root := random.New(seed)

	switch {
	case info.AI:
		d.generateAI(ctx, req, info, &batch)
	case req.Module == ModuleMapReading:
		d.generateMapReading(req, info, root, &batch)
	default:
		d.generateEach(ctx, req, info, root, &batch)
	}
	if batch.Title == "" {
		batch.Title = info.Title
	}
	return batch
}

func (d *Dispatcher) generateEach(ctx context.Context, req Request, info ModuleInfo, root *random.Source, batch *problem.Batch) {
	gen, _ := req.generator(d.limits.MaxAttempts)

	first := d.safeCall(ctx, req.Module, batch.Seed, gen, root.Derive(0))
	n := d.count(req, first.Problem)

	results := make([]problem.Result, 0, n)
	results = append(results, first)
	for i := 1; i < n; i++ {
		results = append(results, d.safeCall(ctx, req.Module, batch.Seed, gen, root.Derive(i)))
	}

	for i, r := range results {
		batch.Problems = append(batch.Problems, r.Problem)
		if r.Err == nil {
			if batch.Title == "" {
				batch.Title = r.Title
			}
			continue
		}
		err := problem.WithModule(r.Err, string(info.ID))
		d.log.Warn("problem generation failed",
			zap.String("module", string(info.ID)),
			zap.Uint64("seed", batch.Seed),
			zap.Int("index", i),
			zap.String("kind", string(problem.KindOf(err))),
			zap.Error(err),
		)
		if batch.Err == nil {
			batch.Err = err
		}
	}
	// a batch where nothing succeeded still takes the generator's own title
	if batch.Title == "" && len(results) > 0 {
		batch.Title = results[0].Title
	}
}

func (d *Dispatcher) generateMapReading(req Request, info ModuleInfo, root *random.Source, batch *problem.Batch) {
	s := orDefault(req.MapReading, mapreading.DefaultSettings)
	if s.MaxAttempts == 0 {
		s.MaxAttempts = d.limits.MaxAttempts
	}
	n := d.clamp(req.Count)
	if req.AutoFit {
		n = d.fit(mapreading.Generate(root.Derive(0), s).Problem, req.Page)
	}
	problems, title, err := mapreading.GenerateBatch(root.Derive(1), s, n)
	batch.Problems = problems
	batch.Title = title
	if err != nil {
		batch.Err = problem.WithModule(err, string(info.ID))
		d.log.Warn("map reading batch incomplete",
			zap.Uint64("seed", batch.Seed),
			zap.Int("requested", n),
			zap.Int("produced", len(problems)),
			zap.Error(batch.Err),
		)
	}
}

func (d *Dispatcher) generateAI(ctx context.Context, req Request, info ModuleInfo, batch *problem.Batch) {
	s := orDefault(req.AI, problemgen.DefaultSettings)
	fail := func(err error) {
		batch.Problems = append(batch.Problems, problem.Fail(batch.Title, problem.CategoryAI, err).Problem)
		if batch.Err == nil {
			batch.Err = err
		}
	}
	if err := s.Validate(); err != nil {
		fail(problem.WithModule(err, string(info.ID)))
		return
	}
	batch.Title = s.Title()
	if d.ai == nil {
		fail(&problem.Error{Kind: problem.KindUpstream, Module: string(info.ID), Message: "no text generator configured"})
		return
	}

	n := d.clamp(req.Count)
	if req.AutoFit {
		n = d.fit(problem.Problem{Question: "<br><br>", Display: problem.DisplayInline}, req.Page)
	}
	sheet, err := d.ai.GenerateSheet(ctx, s, n)
	if sheet != nil {
		for _, q := range sheet.Questions {
			batch.Problems = append(batch.Problems, problemgen.Render(q))
		}
	}
	if err != nil {
		uerr := &problem.Error{Kind: problem.KindUpstream, Module: string(info.ID), Message: "text generation failed", Err: err}
		d.log.Error("text generation failed",
			zap.String("kind", string(s.Kind)),
			zap.Int("requested", n),
			zap.Int("produced", len(batch.Problems)),
			zap.Error(err),
		)
		captureException(ctx, uerr)
		if len(batch.Problems) == 0 {
			fail(uerr)
		} else {
			batch.Err = uerr
		}
	}
}

// count resolves the batch size for a per-problem module.
func (d *Dispatcher) count(req Request, sample problem.Problem) int {
	if req.AutoFit {
		return d.fit(sample, req.Page)
	}
	return d.clamp(req.Count)
}

func (d *Dispatcher) fit(sample problem.Problem, page Page) int {
	n := d.limits.DefaultCount
	if d.fitter != nil {
		n = d.fitter.Fit(sample, page)
	}
	return min(max(n, 1), d.limits.MaxCount)
}

func (d *Dispatcher) clamp(n int) int {
	if n <= 0 {
		n = d.limits.DefaultCount
	}
	return min(max(n, 1), d.limits.MaxCount)
}

// safeCall runs gen, converting a panic into a dispatch failure.
func (d *Dispatcher) safeCall(ctx context.Context, module ModuleID, seed uint64, gen generateFunc, src *random.Source) (r problem.Result) {
	defer func() {
		if v := recover(); v != nil {
			r = problem.Fail("", problem.CategoryError, d.panicError(ctx, module, seed, v))
		}
	}()
	return gen(src)
}

func (d *Dispatcher) panicError(ctx context.Context, module ModuleID, seed uint64, v any) error {
	err := &problem.Error{
		Kind:    problem.KindDispatch,
		Module:  string(module),
		Message: "generator panicked",
		Err:     fmt.Errorf("%v", v),
	}
	d.log.Error("generator panicked",
		zap.String("module", string(module)),
		zap.Uint64("seed", seed),
		zap.Any("panic", v),
		zap.ByteString("stack", debug.Stack()),
	)
	captureException(ctx, err)
	return err
}

func (d *Dispatcher) record(ctx context.Context, req Request, b problem.Batch, elapsed time.Duration) {
	if d.events == nil {
		return
	}
	var settings []byte
	if s := req.Settings(); s != nil {
		settings, _ = json.Marshal(s)
	}
	failed := 0
	for _, p := range b.Problems {
		if p.Failed() {
			failed++
		}
	}
	data := store.GenerationEventData{
		BatchID:      b.ID,
		Module:       b.Module,
		Title:        b.Title,
		Seed:         b.Seed,
		Count:        len(b.Problems),
		Failed:       failed,
		ErrorKind:    string(problem.KindOf(b.Err)),
		ErrorMessage: b.ErrorMessage(),
		LatencyMs:    elapsed.Milliseconds(),
		Settings:     string(settings),
	}
	if err := d.events.AppendGeneration(context.WithoutCancel(ctx), data); err != nil {
		d.log.Warn("failed to record generation event", zap.String("batch_id", b.ID), zap.Error(err))
	}
}

// captureException reports err to the request's Sentry hub, or the global
// one. Without sentry.Init this is a no-op.
func captureException(ctx context.Context, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.CaptureException(err)
}
