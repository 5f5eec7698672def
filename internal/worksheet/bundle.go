package worksheet

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
)

// Bundle is a mixed worksheet: several sections generated together.
type Bundle struct {
	ID       string          `json:"id"`
	Seed     uint64          `json:"seed"`
	Sections []problem.Batch `json:"sections"`
}

// Failed reports whether any section carries an error.
func (b Bundle) Failed() bool {
	for _, s := range b.Sections {
		if s.Err != nil {
			return true
		}
	}
	return false
}

// GenerateBundle generates the sections concurrently, at most
// Limits.Concurrency at a time. A section without its own seed gets one
// derived from the bundle seed and its position, so replaying the bundle
// seed replays every section. Sections keep the order of reqs.
func (d *Dispatcher) GenerateBundle(ctx context.Context, seed uint64, reqs []Request) Bundle {
	if seed == 0 {
		seed = random.NewSeed()
	}
	root := random.New(seed)
	b := Bundle{ID: uuid.NewString(), Seed: seed, Sections: make([]problem.Batch, len(reqs))}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.limits.Concurrency)
	for i, req := range reqs {
		if req.Seed == 0 {
			req.Seed = root.Derive(i).Seed()
		}
		g.Go(func() error {
			b.Sections[i] = d.Generate(gctx, req)
			return nil
		})
	}
	_ = g.Wait()
	return b
}
