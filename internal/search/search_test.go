package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSearchScenarios(t *testing.T) {
	tests := []struct {
		name   string
		seq    []int
		target int
		index  int
		events []Event
	}{
		{
			name:   "powers of two",
			seq:    []int{2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192},
			target: 256,
			index:  7,
			events: []Event{
				Start{},
				Probing{I: 1},
				Probing{I: 2},
				Probing{I: 4},
				BoundFound{I: 8, Low: 4, High: 8},
				BinaryStart{Low: 4, High: 8},
				Checking{Low: 4, High: 8, Mid: 6},
				Checking{Low: 7, High: 8, Mid: 7},
				Found{Index: 7, Low: 7, High: 8, Phase: PhaseBinary},
			},
		},
		{
			name:   "single element match",
			seq:    []int{5},
			target: 5,
			index:  0,
			events: []Event{
				Start{},
				Found{Index: 0, Phase: PhaseBounding},
			},
		},
		{
			name:   "gap between elements",
			seq:    []int{1, 3, 5, 7},
			target: 4,
			index:  NotFound,
			events: []Event{
				Start{},
				Probing{I: 1},
				BoundFound{I: 2, Low: 1, High: 2},
				BinaryStart{Low: 1, High: 2},
				Checking{Low: 1, High: 2, Mid: 1},
				Checking{Low: 2, High: 2, Mid: 2},
				BinaryFailed{Low: 2, High: 1},
				Done{},
			},
		},
		{
			name:   "empty",
			seq:    nil,
			target: 3,
			index:  NotFound,
			events: []Event{Empty{}},
		},
		{
			name:   "single element miss",
			seq:    []int{5},
			target: 3,
			index:  NotFound,
			events: []Event{
				Start{},
				BoundFound{I: 1, Low: 0, High: 0},
				BinaryStart{Low: 0, High: 0},
				Checking{Low: 0, High: 0, Mid: 0},
				BinaryFailed{Low: 0, High: -1},
				Done{},
			},
		},
		{
			name:   "target past the end",
			seq:    []int{1, 2, 3},
			target: 10,
			index:  NotFound,
			events: []Event{
				Start{},
				Probing{I: 1},
				Probing{I: 2},
				BoundFound{I: 4, Low: 2, High: 2},
				BinaryStart{Low: 2, High: 2},
				Checking{Low: 2, High: 2, Mid: 2},
				BinaryFailed{Low: 3, High: 2},
				Done{},
			},
		},
		{
			name:   "exact match on a probe",
			seq:    []int{1, 2, 3, 4, 5},
			target: 3,
			index:  2,
			events: []Event{
				Start{},
				Probing{I: 1},
				Probing{I: 2},
				BoundFound{I: 4, Low: 2, High: 4},
				BinaryStart{Low: 2, High: 4},
				Checking{Low: 2, High: 4, Mid: 3},
				Checking{Low: 2, High: 2, Mid: 2},
				Found{Index: 2, Low: 2, High: 2, Phase: PhaseBinary},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Search(tt.seq, tt.target)
			if res.Index != tt.index {
				t.Errorf("Index = %d, want %d", res.Index, tt.index)
			}
			if diff := cmp.Diff(tt.events, res.Trace.Events()); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearchProperties(t *testing.T) {
	for n := 0; n <= 40; n++ {
		seq := make([]int, n)
		for i := range seq {
			seq[i] = i * 3
		}
		for target := -2; target <= 3*n+2; target++ {
			res := Search(seq, target)
			present := target >= 0 && target%3 == 0 && target/3 < n

			if present {
				if !res.Found() || seq[res.Index] != target {
					t.Fatalf("n=%d target=%d: got index %d", n, target, res.Index)
				}
			} else if res.Found() {
				t.Fatalf("n=%d target=%d: absent target reported at %d", n, target, res.Index)
			}

			checkTraceShape(t, res)
		}
	}
}

func TestSearchDuplicates(t *testing.T) {
	seq := []int{3, 1, 2, 2, 1, 3, 2, 2}
	for _, target := range []int{1, 2, 3} {
		res := Search(seq, target)
		if !res.Found() {
			t.Fatalf("target %d not found", target)
		}
		if got := res.Trace.At(0).At(res.Index); got != target {
			t.Errorf("target %d: element at %d is %d", target, res.Index, got)
		}
	}
}

func TestSearchBoundContainsTarget(t *testing.T) {
	seq := make([]int, 100)
	for i := range seq {
		seq[i] = i
	}
	for target := 1; target < len(seq); target++ {
		res := Search(seq, target)
		for _, ev := range res.Trace.Events() {
			b, ok := ev.(BoundFound)
			if !ok {
				continue
			}
			if target < b.Low || target > b.High {
				t.Errorf("target %d outside bound [%d, %d]", target, b.Low, b.High)
			}
		}
	}
}

func TestSearchIdempotent(t *testing.T) {
	a := Search([]int{9, 1, 7, 3, 5}, 7)
	b := Search([]int{1, 3, 5, 7, 9}, 7)
	c := Search([]int{5, 9, 3, 7, 1}, 7)

	for _, other := range []Result[int]{b, c} {
		if a.Index != other.Index {
			t.Errorf("index %d != %d", a.Index, other.Index)
		}
		if diff := cmp.Diff(a.Trace.Events(), other.Trace.Events()); diff != "" {
			t.Errorf("events differ:\n%s", diff)
		}
		for i := 0; i < a.Trace.Len(); i++ {
			if a.Trace.At(i).Action != other.Trace.At(i).Action {
				t.Errorf("step %d action %q != %q", i, a.Trace.At(i).Action, other.Trace.At(i).Action)
			}
		}
		if diff := cmp.Diff(a.Trace.Sequence(), other.Trace.Sequence()); diff != "" {
			t.Errorf("sequence differs:\n%s", diff)
		}
	}
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	in := []int{5, 3, 9, 1}
	Search(in, 9)
	if diff := cmp.Diff([]int{5, 3, 9, 1}, in); diff != "" {
		t.Errorf("input mutated:\n%s", diff)
	}
}

func TestSnapshotsAreStable(t *testing.T) {
	in := []int{1, 2, 3, 4}
	res := SearchSorted(in, 4)
	in[0] = 100

	snap := res.Trace.At(0)
	if snap.At(0) != 1 {
		t.Errorf("caller mutation reached trace: %d", snap.At(0))
	}

	vals := snap.Values()
	vals[1] = 200
	if res.Trace.Last().At(1) != 2 {
		t.Error("Values did not return an independent copy")
	}

	seq := res.Trace.Sequence()
	seq[2] = 300
	if res.Trace.At(1).At(2) != 3 {
		t.Error("Sequence did not return an independent copy")
	}
}

func TestSearchStrings(t *testing.T) {
	res := Search([]string{"pear", "apple", "fig", "kiwi"}, "kiwi")
	if !res.Found() {
		t.Fatal("kiwi not found")
	}
	if got := res.Trace.Sequence()[res.Index]; got != "kiwi" {
		t.Errorf("got %q at %d", got, res.Index)
	}
}

func TestSnapshotTarget(t *testing.T) {
	res := Search([]float64{0.5, 1.5, 2.5}, 2.5)
	for i, s := range res.Trace.All() {
		if s.Target() != 2.5 {
			t.Errorf("step %d target = %v", i, s.Target())
		}
		if s.Len() != 3 {
			t.Errorf("step %d len = %d", i, s.Len())
		}
	}
}

func TestTraceAllStopsEarly(t *testing.T) {
	res := Search([]int{1, 2, 3, 4, 5, 6, 7, 8}, 7)
	seen := 0
	for range res.Trace.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("iterated %d snapshots, want 2", seen)
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		ev        Event
		low, high int
		ok        bool
	}{
		{Start{}, 0, 0, false},
		{Probing{I: 4}, 0, 0, false},
		{BoundFound{I: 8, Low: 4, High: 7}, 4, 7, true},
		{Checking{Low: 1, High: 3, Mid: 2}, 1, 3, true},
		{BinaryFailed{Low: 3, High: 2}, 3, 2, true},
		{Found{Index: 0, Phase: PhaseBounding}, 0, 0, false},
		{Found{Index: 5, Low: 4, High: 6, Phase: PhaseBinary}, 4, 6, true},
	}
	for _, tt := range tests {
		low, high, ok := Window(tt.ev)
		if low != tt.low || high != tt.high || ok != tt.ok {
			t.Errorf("Window(%#v) = %d, %d, %v", tt.ev, low, high, ok)
		}
	}
}

func checkTraceShape(t *testing.T, res Result[int]) {
	t.Helper()
	statuses := res.Trace.Statuses()
	if len(statuses) == 0 {
		t.Fatal("empty trace")
	}

	first := statuses[0]
	if first != StatusStart && first != StatusEmpty {
		t.Fatalf("trace starts with %v", first)
	}

	last := statuses[len(statuses)-1]
	switch last {
	case StatusFound, StatusEmpty:
	case StatusDone:
		if len(statuses) < 2 || statuses[len(statuses)-2] != StatusBinaryFailed {
			t.Fatalf("Done not preceded by BinaryFailed: %v", statuses)
		}
	default:
		t.Fatalf("trace ends with %v", last)
	}

	for i, s := range statuses[:len(statuses)-1] {
		if s.Terminal() {
			t.Fatalf("terminal status %v at step %d of %d", s, i, len(statuses))
		}
	}

	if !res.Found() {
		for _, s := range statuses {
			if s == StatusFound {
				t.Fatal("Found snapshot in a failed search")
			}
		}
	}
}
