package metrics

import (
	"testing"

	"github.com/san-kum/expsearch/internal/search"
)

func TestCollect(t *testing.T) {
	res := search.Search([]int{2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192}, 256)
	got := Collect(res.Trace.Events(), Default()...)

	want := map[string]float64{
		"steps":       9,
		"probes":      3,
		"midpoints":   2,
		"bound_width": 5,
	}
	for name, v := range want {
		if got[name] != v {
			t.Errorf("%s = %v, want %v", name, got[name], v)
		}
	}
}

func TestCollectResets(t *testing.T) {
	ms := Default()
	events := search.Search([]int{1, 3, 5, 7}, 4).Trace.Events()

	first := Collect(events, ms...)
	second := Collect(events, ms...)
	for name := range first {
		if first[name] != second[name] {
			t.Errorf("%s changed between runs: %v -> %v", name, first[name], second[name])
		}
	}
}

func TestCollectShortCircuit(t *testing.T) {
	got := Collect(search.Search([]int{5}, 5).Trace.Events(), Default()...)
	if got["probes"] != 0 || got["midpoints"] != 0 || got["bound_width"] != 0 {
		t.Errorf("unexpected metrics: %v", got)
	}
	if got["steps"] != 2 {
		t.Errorf("steps = %v, want 2", got["steps"])
	}
}

func TestWindowSeries(t *testing.T) {
	events := search.Search([]int{1, 3, 5, 7}, 4).Trace.Events()
	got := WindowSeries(events)
	want := []float64{2, 2, 2, 1, 0}

	if len(got) != len(want) {
		t.Fatalf("series %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("series[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWindowSeriesEmpty(t *testing.T) {
	if got := WindowSeries(search.Search([]int{}, 1).Trace.Events()); len(got) != 0 {
		t.Errorf("expected empty series, got %v", got)
	}
}
