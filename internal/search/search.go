package search

import (
	"cmp"
	"fmt"
	"slices"
)

// NotFound is the index reported when the target is absent.
const NotFound = -1

// Result is the outcome of one search call.
type Result[T cmp.Ordered] struct {
	Index int
	Trace *Trace[T]
}

// Found reports whether the target was located.
func (r Result[T]) Found() bool { return r.Index != NotFound }

// Normalize returns an ascending copy of seq. The input is not modified.
func Normalize[T cmp.Ordered](seq []T) []T {
	out := slices.Clone(seq)
	slices.Sort(out)
	return out
}

// Search sorts seq and runs exponential search for target over it.
func Search[T cmp.Ordered](seq []T, target T) Result[T] {
	return run(Normalize(seq), target)
}

// SearchSorted runs exponential search over seq as given. seq must already be
// ascending; for unsorted input the result and trace are undefined. seq is
// copied, so later changes by the caller do not reach the trace.
func SearchSorted[T cmp.Ordered](seq []T, target T) Result[T] {
	return run(slices.Clone(seq), target)
}

func run[T cmp.Ordered](seq []T, target T) Result[T] {
	rec := newRecorder(seq, target)
	n := len(seq)

	if n == 0 {
		rec.record(Empty{}, "The array is empty. Search finished.")
		return Result[T]{Index: NotFound, Trace: rec.trace}
	}

	rec.record(Start{}, fmt.Sprintf("Starting exponential search for %v. The array must be sorted.", target))

	if cmp.Compare(seq[0], target) == 0 {
		rec.record(Found{Index: 0, Phase: PhaseBounding}, fmt.Sprintf("Value %v found at index 0.", target))
		return Result[T]{Index: 0, Trace: rec.trace}
	}

	low, high := bound(rec, seq, target)

	idx := binary(rec, seq, target, low, high)
	if idx == NotFound {
		rec.record(Done{}, "Exponential search finished. Target not found.")
	}
	return Result[T]{Index: idx, Trace: rec.trace}
}

// bound doubles a probe index until it leaves the sequence or lands on an
// element greater than target. The comparison is <=, so an exact match past
// index 0 is left for the binary phase.
func bound[T cmp.Ordered](rec recorder[T], seq []T, target T) (low, high int) {
	n := len(seq)
	i := 1
	for i < n && cmp.Compare(seq[i], target) <= 0 {
		rec.record(Probing{I: i}, fmt.Sprintf("Phase 1: checking index %d (value %v). Value is still <= target.", i, seq[i]))
		i *= 2
	}

	high = min(i, n-1)
	low = i / 2
	rec.record(BoundFound{I: i, Low: low, High: high},
		fmt.Sprintf("Phase 1 done. The target can only be in range [%d - %d].", low, high))
	return low, high
}

func binary[T cmp.Ordered](rec recorder[T], seq []T, target T, low, high int) int {
	rec.record(BinaryStart{Low: low, High: high},
		fmt.Sprintf("Phase 2: starting binary search in range [%d - %d] (step %d).", low, high, rec.trace.Len()))

	for low <= high {
		mid := low + (high-low)/2
		rec.record(Checking{Low: low, High: high, Mid: mid},
			fmt.Sprintf("Binary search: checking middle index mid=%d (value %v).", mid, seq[mid]))

		switch c := cmp.Compare(seq[mid], target); {
		case c == 0:
			rec.record(Found{Index: mid, Low: low, High: high, Phase: PhaseBinary},
				fmt.Sprintf("Value %v found at index %d!", target, mid))
			return mid
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	rec.record(BinaryFailed{Low: low, High: high},
		fmt.Sprintf("Binary search finished. Target %v is not in this range.", target))
	return NotFound
}
