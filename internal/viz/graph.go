package viz

import (
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/expsearch/internal/metrics"
	"github.com/san-kum/expsearch/internal/search"
)

// WindowGraph plots the width of the candidate range over the steps that
// have one. It returns "" when the trace never reached the binary phase.
func WindowGraph(tr *search.Trace[int], width, height int) string {
	series := metrics.WindowSeries(tr.Events())
	if len(series) == 0 {
		return ""
	}
	return plot(series, width, height, "search window width per step")
}

// ValuesGraph plots the sorted sequence.
func ValuesGraph(tr *search.Trace[int], width, height int) string {
	seq := tr.Sequence()
	if len(seq) == 0 {
		return ""
	}
	data := make([]float64, len(seq))
	for i, v := range seq {
		data[i] = float64(v)
	}
	return plot(data, width, height, "sorted values by index")
}

// SeriesGraph plots one value per run, e.g. steps per target from a sweep.
func SeriesGraph(series []float64, width, height int, caption string) string {
	if len(series) == 0 {
		return ""
	}
	return plot(series, width, height, caption)
}

func plot(data []float64, width, height int, caption string) string {
	if len(data) == 1 {
		data = []float64{0, data[0]}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
