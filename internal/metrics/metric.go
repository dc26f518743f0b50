// Package metrics derives statistics from the events of a search trace.
package metrics

import "github.com/san-kum/expsearch/internal/search"

type Metric interface {
	Name() string
	Observe(ev search.Event)
	Value() float64
	Reset()
}

// Default returns the metrics reported by the CLI.
func Default() []Metric {
	return []Metric{
		NewSteps(),
		NewProbes(),
		NewMidpoints(),
		NewBoundWidth(),
	}
}

// Collect resets ms, feeds them every event in order and returns their
// values by name.
func Collect(events []search.Event, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
	}
	for _, ev := range events {
		for _, m := range ms {
			m.Observe(ev)
		}
	}
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// WindowSeries returns the width of the candidate range for every event that
// has one. A crossed window counts as zero.
func WindowSeries(events []search.Event) []float64 {
	series := make([]float64, 0, len(events))
	for _, ev := range events {
		low, high, ok := search.Window(ev)
		if !ok {
			continue
		}
		series = append(series, float64(max(high-low+1, 0)))
	}
	return series
}
