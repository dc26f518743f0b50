// Package sweep runs the search for every target of interest over one
// sequence and summarizes how its cost changes with the target's position.
package sweep

import (
	"context"
	"errors"
	"runtime"
	"slices"

	"github.com/san-kum/expsearch/internal/metrics"
	"github.com/san-kum/expsearch/internal/search"
	"golang.org/x/sync/errgroup"
)

var ErrEmptySequence = errors.New("sweep: empty sequence")

type Options struct {
	// Workers bounds concurrent searches. Zero means GOMAXPROCS.
	Workers int
	// Misses adds targets that are not in the sequence: one below the
	// smallest value, one above the largest and one inside every gap.
	Misses bool
}

// Run is the outcome of searching for one target.
type Run struct {
	Target  int
	Index   int
	Metrics map[string]float64
}

func (r Run) Found() bool { return r.Index != search.NotFound }

type Report struct {
	Sequence []int
	Runs     []Run
}

// Targets lists the distinct values of a sorted sequence, plus the misses
// described by Options.Misses, in ascending order.
func Targets(sorted []int, misses bool) []int {
	if len(sorted) == 0 {
		return nil
	}
	targets := slices.Compact(slices.Clone(sorted))
	if misses {
		n := len(targets)
		first, last := targets[0], targets[n-1]
		for i := 0; i+1 < n; i++ {
			if targets[i]+1 < targets[i+1] {
				targets = append(targets, targets[i]+1)
			}
		}
		targets = append(targets, first-1, last+1)
		slices.Sort(targets)
	}
	return targets
}

// Sweep sorts seq once and searches it for every target from Targets.
func Sweep(ctx context.Context, seq []int, opts Options) (*Report, error) {
	sorted := search.Normalize(seq)
	if len(sorted) == 0 {
		return nil, ErrEmptySequence
	}

	targets := Targets(sorted, opts.Misses)
	runs := make([]Run, len(targets))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, t := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := search.SearchSorted(sorted, t)
			runs[i] = Run{
				Target:  t,
				Index:   res.Index,
				Metrics: metrics.Collect(res.Trace.Events(), metrics.Default()...),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{Sequence: sorted, Runs: runs}, nil
}

// Series returns the named metric for every run, in target order.
func (r *Report) Series(name string) []float64 {
	out := make([]float64, len(r.Runs))
	for i, run := range r.Runs {
		out[i] = run.Metrics[name]
	}
	return out
}

func (r *Report) Mean(name string) float64 {
	if len(r.Runs) == 0 {
		return 0
	}
	var sum float64
	for _, run := range r.Runs {
		sum += run.Metrics[name]
	}
	return sum / float64(len(r.Runs))
}

// Extremes returns the cheapest and the most expensive run by the named
// metric. Ties go to the smaller target.
func (r *Report) Extremes(name string) (best, worst Run) {
	if len(r.Runs) == 0 {
		return Run{}, Run{}
	}
	best, worst = r.Runs[0], r.Runs[0]
	for _, run := range r.Runs[1:] {
		v := run.Metrics[name]
		if v < best.Metrics[name] {
			best = run
		}
		if v > worst.Metrics[name] {
			worst = run
		}
	}
	return best, worst
}
