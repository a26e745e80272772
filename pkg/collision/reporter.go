package collision

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/rolf/seedsweep/pkg/seed"
	"github.com/rolf/seedsweep/pkg/sweep"
)

// Reporter generates a seed for every triple of a sweep and reports the
// values that recur.
type Reporter struct {
	cfg     Config
	gen     *seed.Generator
	logger  log.Logger
	metrics *Metrics
}

func New(cfg Config, gen *seed.Generator, logger log.Logger, metrics *Metrics) *Reporter {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Reporter{
		cfg:     cfg,
		gen:     gen,
		logger:  logger,
		metrics: metrics,
	}
}

// Run sweeps s and builds the collision report.
func (r *Reporter) Run(ctx context.Context, s sweep.Sweep) (*Report, error) {
	start := time.Now()
	level.Info(r.logger).Log("msg", "starting sweep",
		"algorithm", r.gen.Algorithm(),
		"modulus", r.gen.Modulus(),
		"size", s.Size(),
		"workers", r.cfg.Workers,
		"bloom", r.cfg.Bloom)

	var (
		table *Table
		err   error
	)
	if r.cfg.Bloom {
		table, err = r.countWithBloom(ctx, s)
	} else {
		table, err = r.count(ctx, s, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("sweep failed: %w", err)
	}

	report := r.buildReport(s, table, time.Since(start))
	r.metrics.observe(report)

	level.Info(r.logger).Log("msg", "sweep complete",
		"generated", report.Generated,
		"distinct", report.Distinct,
		"colliding", len(report.Collisions),
		"expected", fmt.Sprintf("%.2f", report.Expected),
		"duration", report.Duration)
	return report, nil
}

func (r *Reporter) buildReport(s sweep.Sweep, table *Table, d time.Duration) *Report {
	generated := uint64(s.Size())
	collisions := table.Collisions()

	distinct := generated
	for _, c := range collisions {
		distinct -= uint64(c.Count - 1)
	}

	return &Report{
		Algorithm:  r.gen.Algorithm().String(),
		Modulus:    r.gen.Modulus(),
		Alphas:     alphaKeys(s.Alphas),
		Trials:     s.Trials,
		Steps:      s.Steps,
		Generated:  generated,
		Distinct:   distinct,
		Expected:   ExpectedCollisions(generated, r.gen.Modulus()),
		Duration:   d,
		Collisions: collisions,
	}
}

func alphaKeys(alphas []float64) []string {
	out := make([]string, len(alphas))
	for i, a := range alphas {
		out[i] = seed.FormatAlpha(a)
	}
	return out
}

// count tallies the seeds of s. When keep is set only values it accepts are
// stored. Rows are split across workers, each with a private table, and
// merged once all of them are done.
func (r *Reporter) count(ctx context.Context, s sweep.Sweep, keep func(uint64) bool) (*Table, error) {
	pairs := s.Pairs()
	workers := min(r.cfg.Workers, max(len(pairs), 1))
	tables := make([]*Table, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		size := 0
		if keep == nil {
			size = s.Size() / workers
		}
		tables[w] = NewTableWithSize(size)

		g.Go(func() error {
			t := tables[w]
			for i := w; i < len(pairs); i += workers {
				err := s.EachInPair(ctx, pairs[i], func(tr sweep.Triple) error {
					v := r.gen.SeedKey(tr.Key())
					if keep == nil || keep(v) {
						t.Add(v)
					}
					return nil
				})
				if err != nil {
					return err
				}
			}
			level.Debug(r.logger).Log("msg", "worker done", "worker", w, "stored", t.Total())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := tables[0]
	for _, t := range tables[1:] {
		out.Merge(t)
	}
	return out, nil
}
