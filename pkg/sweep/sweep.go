// Package sweep enumerates the alpha x trial x t parameter grid.
package sweep

import (
	"context"

	"github.com/rolf/seedsweep/pkg/seed"
)

// Triple is one point of the sweep.
type Triple struct {
	Alpha float64
	Trial int
	T     int
}

// Key returns the identifying string of the triple.
func (tr Triple) Key() string {
	return seed.Key(tr.Alpha, tr.Trial, tr.T)
}

// Pair is an (alpha, trial) row of the sweep covering every t.
type Pair struct {
	Alpha float64
	Trial int
}

// Sweep is the full enumeration of parameter triples.
type Sweep struct {
	Alphas []float64
	Trials int
	Steps  int
}

func New(cfg Config) Sweep {
	return Sweep{
		Alphas: append([]float64(nil), cfg.Alphas...),
		Trials: cfg.Trials,
		Steps:  cfg.Steps,
	}
}

// Size is the number of triples in the sweep.
func (s Sweep) Size() int {
	return len(s.Alphas) * s.Trials * s.Steps
}

// Pairs lists the (alpha, trial) rows in sweep order.
func (s Sweep) Pairs() []Pair {
	pairs := make([]Pair, 0, len(s.Alphas)*s.Trials)
	for _, a := range s.Alphas {
		for trial := 0; trial < s.Trials; trial++ {
			pairs = append(pairs, Pair{Alpha: a, Trial: trial})
		}
	}
	return pairs
}

// Each calls fn for every triple, alpha outermost and t innermost. It stops at
// the first error returned by fn or when ctx is done.
func (s Sweep) Each(ctx context.Context, fn func(Triple) error) error {
	for _, p := range s.Pairs() {
		if err := s.EachInPair(ctx, p, fn); err != nil {
			return err
		}
	}
	return nil
}

// ctxCheckInterval is how many steps run between checks of ctx.
const ctxCheckInterval = 1024

// EachInPair calls fn for t in [0, Steps) of a single row.
func (s Sweep) EachInPair(ctx context.Context, p Pair, fn func(Triple) error) error {
	for t := 0; t < s.Steps; t++ {
		if t%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := fn(Triple{Alpha: p.Alpha, Trial: p.Trial, T: t}); err != nil {
			return err
		}
	}
	return nil
}
