package search

import (
	"cmp"
	"iter"
	"slices"
)

// Snapshot is the state of one search at one instant.
type Snapshot[T cmp.Ordered] struct {
	Event  Event
	Action string

	seq    []T
	target T
}

func (s Snapshot[T]) Status() Status { return s.Event.Status() }
func (s Snapshot[T]) Target() T      { return s.target }
func (s Snapshot[T]) Len() int       { return len(s.seq) }

// At returns the element at index i of the sorted sequence.
func (s Snapshot[T]) At(i int) T { return s.seq[i] }

// Values returns a copy of the sorted sequence the snapshot refers to.
func (s Snapshot[T]) Values() []T { return slices.Clone(s.seq) }

// Trace is the ordered log of snapshots produced by one search call.
//
// The sorted sequence is stored once and shared by every snapshot. Nothing
// writes to it after the call returns, and callers only ever receive copies,
// so a snapshot never changes once recorded.
type Trace[T cmp.Ordered] struct {
	seq    []T
	target T
	steps  []Snapshot[T]
}

func (t *Trace[T]) Len() int  { return len(t.steps) }
func (t *Trace[T]) Target() T { return t.target }

// At returns the i-th snapshot.
func (t *Trace[T]) At(i int) Snapshot[T] { return t.steps[i] }

// Last returns the final snapshot. Every trace has at least one.
func (t *Trace[T]) Last() Snapshot[T] { return t.steps[len(t.steps)-1] }

// Sequence returns a copy of the sorted sequence searched.
func (t *Trace[T]) Sequence() []T { return slices.Clone(t.seq) }

// Steps returns a copy of the snapshot slice.
func (t *Trace[T]) Steps() []Snapshot[T] { return slices.Clone(t.steps) }

// Events returns the event of every snapshot, in order.
func (t *Trace[T]) Events() []Event {
	out := make([]Event, len(t.steps))
	for i, s := range t.steps {
		out[i] = s.Event
	}
	return out
}

// Statuses returns the status of every snapshot, in order.
func (t *Trace[T]) Statuses() []Status {
	out := make([]Status, len(t.steps))
	for i, s := range t.steps {
		out[i] = s.Status()
	}
	return out
}

// All iterates the snapshots in recording order.
func (t *Trace[T]) All() iter.Seq2[int, Snapshot[T]] {
	return func(yield func(int, Snapshot[T]) bool) {
		for i, s := range t.steps {
			if !yield(i, s) {
				return
			}
		}
	}
}

// recorder appends snapshots to a trace. It is never shared between calls.
type recorder[T cmp.Ordered] struct {
	trace *Trace[T]
}

func newRecorder[T cmp.Ordered](seq []T, target T) recorder[T] {
	return recorder[T]{trace: &Trace[T]{
		seq:    seq,
		target: target,
		steps:  make([]Snapshot[T], 0, expectedSteps(len(seq))),
	}}
}

func (r recorder[T]) record(ev Event, action string) {
	r.trace.steps = append(r.trace.steps, Snapshot[T]{
		Event:  ev,
		Action: action,
		seq:    r.trace.seq,
		target: r.trace.target,
	})
}

// expectedSteps sizes the snapshot slice: a start marker, up to log2(n)+1
// probes and midpoints, plus the phase boundaries.
func expectedSteps(n int) int {
	logN := 1
	for v := n; v > 1; v >>= 1 {
		logN++
	}
	return 2*logN + 6
}
